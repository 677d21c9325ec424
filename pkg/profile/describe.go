// Package profile computes the data-understanding side of the analysis:
// class balance, descriptive statistics, shared-bin histograms, outlier
// fences, and the correlation structure of the combined wine table, plus a
// markdown report that ties them together.
package profile

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"winescope/pkg/dataset"
	"winescope/pkg/wine"
)

// Summary holds the descriptive statistics of one numeric column. Count is
// the number of usable values; Missing tallies NaNs, which the strict
// loader never produces but in-memory tables could.
type Summary struct {
	Column  string
	Count   int
	Missing int
	Mean    float64
	Std     float64
	Min     float64
	Q1      float64
	Median  float64
	Q3      float64
	Max     float64
	Skew    float64
}

// Describe summarizes every attribute column plus the quality score, in
// schema order.
func Describe(ds *dataset.Dataset) []Summary {
	out := make([]Summary, 0, wine.NumAttributes+1)
	for _, a := range wine.Attributes() {
		out = append(out, summarize(a.String(), ds.Column(a)))
	}
	out = append(out, summarize(wine.QualityColumn, qualityValues(ds)))
	return out
}

// DescribeByColor summarizes each class separately, for side-by-side
// comparison of the red and white distributions.
func DescribeByColor(ds *dataset.Dataset) map[wine.Color][]Summary {
	return map[wine.Color][]Summary{
		wine.Red:   Describe(ds.Subset(wine.Red)),
		wine.White: Describe(ds.Subset(wine.White)),
	}
}

func summarize(name string, values []float64) Summary {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	s := Summary{Column: name, Count: len(clean), Missing: len(values) - len(clean)}
	if s.Count == 0 {
		return s
	}
	sorted := slices.Clone(clean)
	slices.Sort(sorted)

	s.Mean = stat.Mean(clean, nil)
	s.Std = stat.StdDev(clean, nil)
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Q1 = quantile(sorted, 0.25)
	s.Median = quantile(sorted, 0.5)
	s.Q3 = quantile(sorted, 0.75)
	s.Skew = stat.Skew(clean, nil)
	return s
}

// quantile interpolates linearly on the rank p*(n-1) of the sorted values,
// the convention pandas' describe() uses. gonum's stat.Quantile interpolates
// the empirical CDF instead and lands on different values.
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	rank := p * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (rank-float64(lo))*(sorted[hi]-sorted[lo])
}

func qualityValues(ds *dataset.Dataset) []float64 {
	qs := ds.Qualities()
	out := make([]float64, len(qs))
	for i, q := range qs {
		out[i] = float64(q)
	}
	return out
}
