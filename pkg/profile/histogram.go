package profile

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"winescope/pkg/dataset"
	"winescope/pkg/wine"
)

// Histogram bins one attribute over the combined range, counting each class
// separately. Both classes share the same edges, so the two distributions
// overlay without rebinning.
type Histogram struct {
	Column string
	// Edges has Bins+1 entries spanning [min, max] of the combined column.
	Edges  []float64
	Counts map[wine.Color][]float64
}

// Bins returns the number of bins.
func (h Histogram) Bins() int { return len(h.Edges) - 1 }

// NewHistogram bins attribute a of ds into the given number of bins.
func NewHistogram(ds *dataset.Dataset, a wine.Attribute, bins int) (Histogram, error) {
	if bins < 1 {
		return Histogram{}, fmt.Errorf("histogram %q: need at least one bin, got %d", a, bins)
	}
	all := ds.Column(a)
	if len(all) == 0 {
		return Histogram{}, fmt.Errorf("histogram %q: empty dataset", a)
	}

	lo, hi := floats.Min(all), floats.Max(all)
	if lo == hi {
		// Degenerate column; widen so the single value still lands in a bin.
		hi = lo + 1
	}
	edges := make([]float64, bins+1)
	floats.Span(edges, lo, hi)

	// stat.Histogram half-opens every bin, so nudge the last divider past
	// the maximum to count it in the final bin.
	dividers := slices.Clone(edges)
	dividers[len(dividers)-1] = math.Nextafter(hi, math.Inf(1))

	h := Histogram{
		Column: a.String(),
		Edges:  edges,
		Counts: make(map[wine.Color][]float64, 2),
	}
	for _, c := range []wine.Color{wine.Red, wine.White} {
		vals := ds.Subset(c).Column(a)
		slices.Sort(vals)
		h.Counts[c] = stat.Histogram(make([]float64, bins), dividers, vals, nil)
	}
	return h, nil
}
