package profile

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"winescope/pkg/dataset"
	"winescope/pkg/wine"
)

// Options bound the report's optional sections.
type Options struct {
	// TopCorrelations caps the strongest-correlations table. Zero means 10.
	TopCorrelations int
	// SampleRows caps the preview table. Zero means 5.
	SampleRows int
}

func (o Options) withDefaults() Options {
	if o.TopCorrelations == 0 {
		o.TopCorrelations = 10
	}
	if o.SampleRows == 0 {
		o.SampleRows = 5
	}
	return o
}

// Report is the full data-understanding profile of a labeled wine table.
type Report struct {
	Dataset    string
	Rows       int
	Columns    []string
	Duplicates int
	Preview    [][]string

	Balance Balance
	Quality QualityCounts
	Overall []Summary
	ByColor map[wine.Color][]Summary
	Fences  []Fence
	Corr    *Matrix
	TopCorr []Pair

	// Insights are interpretation notes derived from the numbers above.
	Insights []string
}

// Build profiles ds into a Report.
func Build(ds *dataset.Dataset, opts Options) (*Report, error) {
	if ds.Len() == 0 {
		return nil, fmt.Errorf("profile %q: empty dataset", ds.Name)
	}
	opts = opts.withDefaults()

	corr, err := Correlations(ds)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Dataset:    ds.Name,
		Rows:       ds.Len(),
		Columns:    ds.Header,
		Duplicates: countDuplicates(ds),
		Preview:    preview(ds, opts.SampleRows),
		Balance:    ClassBalance(ds),
		Quality:    QualityDistribution(ds),
		Overall:    Describe(ds),
		ByColor:    DescribeByColor(ds),
		Fences:     IQRFences(ds),
		Corr:       corr,
		TopCorr:    corr.TopPairs(opts.TopCorrelations),
	}
	r.Insights = insights(r)
	return r, nil
}

func countDuplicates(ds *dataset.Dataset) int {
	seen := make(map[wine.Sample]bool, ds.Len())
	dups := 0
	for _, s := range ds.Samples {
		if seen[s] {
			dups++
		}
		seen[s] = true
	}
	return dups
}

func preview(ds *dataset.Dataset, n int) [][]string {
	if n > ds.Len() {
		n = ds.Len()
	}
	rows := make([][]string, 0, n)
	for _, s := range ds.Samples[:n] {
		row := make([]string, 0, wine.NumAttributes+2)
		for _, v := range s.Features {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		row = append(row, strconv.Itoa(s.Quality), strconv.Itoa(s.Color.Binary()))
		rows = append(rows, row)
	}
	return rows
}

// insights turns the computed numbers into the short interpretation notes a
// human would write under the tables.
func insights(r *Report) []string {
	var notes []string

	maj, minr := r.Balance.Majority(), wine.Red
	if maj == wine.Red {
		minr = wine.White
	}
	if r.Balance.Ratio > 0 {
		notes = append(notes, fmt.Sprintf(
			"%s wines outnumber %s roughly %.1f:1 (%.1f%% vs %.1f%%); accuracy alone would look good for a classifier that always answers %q.",
			maj, minr, r.Balance.Ratio,
			100*r.Balance.Proportions[maj], 100*r.Balance.Proportions[minr], maj))
	} else {
		notes = append(notes, fmt.Sprintf("only %s samples present; the class mix cannot be assessed.", maj))
	}

	if n := totalMissing(r.Overall); n == 0 {
		notes = append(notes, "no missing values in any column.")
	} else {
		notes = append(notes, fmt.Sprintf("%d missing values; imputation would be needed before modeling.", n))
	}

	if mid := midQualityShare(r.Quality, r.Rows); mid > 0.5 {
		notes = append(notes, fmt.Sprintf(
			"quality concentrates on scores 5-6 (%.1f%% of rows); the scale's extremes are rare.", 100*mid))
	}

	if len(r.TopCorr) > 0 {
		p := r.TopCorr[0]
		notes = append(notes, fmt.Sprintf(
			"strongest linear association: %s vs %s (r=%+.2f).", p.A, p.B, p.R))
	}

	if col, d := mostSeparating(r.ByColor); col != "" {
		notes = append(notes, fmt.Sprintf(
			"%s separates the classes most (standardized mean difference %.2f); expect it to carry a red-vs-white model.", col, d))
	}

	if f := worstFence(r.Fences); f.Column != "" && f.Share > 0 {
		notes = append(notes, fmt.Sprintf(
			"%s has the heaviest tails: %d values (%.1f%%) beyond the 1.5×IQR fences.",
			f.Column, f.Outliers(), 100*f.Share))
	}

	if r.Duplicates > 0 {
		notes = append(notes, fmt.Sprintf(
			"%d exact duplicate rows (%.1f%%); a train/test split must not leak them across sides.",
			r.Duplicates, 100*float64(r.Duplicates)/float64(r.Rows)))
	}
	return notes
}

func totalMissing(summaries []Summary) int {
	n := 0
	for _, s := range summaries {
		n += s.Missing
	}
	return n
}

func midQualityShare(qc QualityCounts, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(qc.Count(5)+qc.Count(6)) / float64(total)
}

// mostSeparating finds the attribute with the largest standardized mean
// difference between the classes.
func mostSeparating(byColor map[wine.Color][]Summary) (string, float64) {
	red, white := byColor[wine.Red], byColor[wine.White]
	best, bestD := "", 0.0
	for i := 0; i < len(red) && i < len(white); i++ {
		if red[i].Column == wine.QualityColumn {
			continue
		}
		nr, nw := float64(red[i].Count), float64(white[i].Count)
		if nr < 2 || nw < 2 {
			continue
		}
		pooled := math.Sqrt(((nr-1)*red[i].Std*red[i].Std + (nw-1)*white[i].Std*white[i].Std) / (nr + nw - 2))
		if pooled == 0 || math.IsNaN(pooled) {
			continue
		}
		if d := math.Abs(red[i].Mean-white[i].Mean) / pooled; d > bestD {
			best, bestD = red[i].Column, d
		}
	}
	return best, bestD
}

func worstFence(fences []Fence) Fence {
	var worst Fence
	for _, f := range fences {
		if f.Share > worst.Share {
			worst = f
		}
	}
	return worst
}

// Markdown renders the report as a standalone markdown document.
func (r *Report) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Data understanding: %s\n\n", r.Dataset)
	fmt.Fprintf(&b, "- rows: %d\n", r.Rows)
	fmt.Fprintf(&b, "- columns: %d (%s + label)\n", len(r.Columns)+1, strings.Join(r.Columns, ", "))
	fmt.Fprintf(&b, "- exact duplicate rows: %d\n\n", r.Duplicates)

	fmt.Fprintf(&b, "## Class balance\n\n")
	fmt.Fprintf(&b, "| type | count | share |\n|---|---:|---:|\n")
	for _, c := range []wine.Color{wine.Red, wine.White} {
		fmt.Fprintf(&b, "| %s | %d | %.1f%% |\n", c, r.Balance.Counts[c], 100*r.Balance.Proportions[c])
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Quality distribution\n\n")
	fmt.Fprintf(&b, "| quality | red | white | total |\n|---:|---:|---:|---:|\n")
	for _, q := range r.Quality.Scores {
		fmt.Fprintf(&b, "| %d | %d | %d | %d |\n",
			q, r.Quality.ByColor[wine.Red][q], r.Quality.ByColor[wine.White][q], r.Quality.Count(q))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Descriptive statistics\n\n")
	writeSummaryTable(&b, r.Overall)

	for _, c := range []wine.Color{wine.Red, wine.White} {
		fmt.Fprintf(&b, "### %s only\n\n", c)
		writeSummaryTable(&b, r.ByColor[c])
	}

	fmt.Fprintf(&b, "## Outlier fences (1.5×IQR)\n\n")
	fmt.Fprintf(&b, "| column | lower | upper | below | above | share |\n|---|---:|---:|---:|---:|---:|\n")
	for _, f := range r.Fences {
		fmt.Fprintf(&b, "| %s | %.3f | %.3f | %d | %d | %.1f%% |\n",
			f.Column, f.Lower, f.Upper, f.Low, f.High, 100*f.Share)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Strongest correlations\n\n")
	fmt.Fprintf(&b, "| a | b | r |\n|---|---|---:|\n")
	for _, p := range r.TopCorr {
		fmt.Fprintf(&b, "| %s | %s | %+.3f |\n", p.A, p.B, p.R)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Sample rows\n\n")
	fmt.Fprintf(&b, "| %s | type |\n", strings.Join(r.Columns, " | "))
	b.WriteString("|")
	b.WriteString(strings.Repeat("---|", len(r.Columns)+1))
	b.WriteString("\n")
	for _, row := range r.Preview {
		fmt.Fprintf(&b, "| %s |\n", strings.Join(row, " | "))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Notes\n\n")
	for _, n := range r.Insights {
		fmt.Fprintf(&b, "- %s\n", n)
	}
	return b.String()
}

func writeSummaryTable(b *strings.Builder, summaries []Summary) {
	fmt.Fprintf(b, "| column | count | missing | mean | std | min | q1 | median | q3 | max | skew |\n")
	fmt.Fprintf(b, "|---|---:|---:|---:|---:|---:|---:|---:|---:|---:|---:|\n")
	for _, s := range summaries {
		fmt.Fprintf(b, "| %s | %d | %d | %.3f | %.3f | %.3f | %.3f | %.3f | %.3f | %.3f | %.2f |\n",
			s.Column, s.Count, s.Missing, s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max, s.Skew)
	}
	b.WriteString("\n")
}
