package profile

import (
	"slices"

	"winescope/pkg/dataset"
	"winescope/pkg/wine"
)

// Balance describes the red/white class mix of a labeled table.
type Balance struct {
	Total       int
	Counts      map[wine.Color]int
	Proportions map[wine.Color]float64
	// Ratio is the majority count over the minority count, 0 when either
	// class is absent.
	Ratio float64
}

// ClassBalance tallies the class label the way value_counts would.
func ClassBalance(ds *dataset.Dataset) Balance {
	b := Balance{
		Total:       ds.Len(),
		Counts:      ds.ColorCounts(),
		Proportions: make(map[wine.Color]float64, 2),
	}
	for c, n := range b.Counts {
		b.Proportions[c] = float64(n) / float64(b.Total)
	}
	red, white := b.Counts[wine.Red], b.Counts[wine.White]
	if red > 0 && white > 0 {
		b.Ratio = float64(max(red, white)) / float64(min(red, white))
	}
	return b
}

// Majority returns the more frequent class, white on a tie.
func (b Balance) Majority() wine.Color {
	if b.Counts[wine.Red] > b.Counts[wine.White] {
		return wine.Red
	}
	return wine.White
}

// QualityCounts is the per-class quality score distribution.
type QualityCounts struct {
	// Scores lists every observed score, ascending.
	Scores  []int
	ByColor map[wine.Color]map[int]int
}

// QualityDistribution tallies quality scores separately for each class.
func QualityDistribution(ds *dataset.Dataset) QualityCounts {
	qc := QualityCounts{ByColor: map[wine.Color]map[int]int{
		wine.Red:   make(map[int]int),
		wine.White: make(map[int]int),
	}}
	seen := make(map[int]bool)
	for _, s := range ds.Samples {
		qc.ByColor[s.Color][s.Quality]++
		seen[s.Quality] = true
	}
	for q := range seen {
		qc.Scores = append(qc.Scores, q)
	}
	slices.Sort(qc.Scores)
	return qc
}

// Count returns the tally for one score summed over both classes.
func (qc QualityCounts) Count(score int) int {
	return qc.ByColor[wine.Red][score] + qc.ByColor[wine.White][score]
}
