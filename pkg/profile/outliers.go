package profile

import (
	"slices"

	"winescope/pkg/dataset"
	"winescope/pkg/wine"
)

// iqrK is Tukey's fence multiplier, the same 1.5 a boxplot whisker uses.
const iqrK = 1.5

// Fence holds the 1.5×IQR outlier fences of one column and the tally of
// values beyond them.
type Fence struct {
	Column string
	Lower  float64
	Upper  float64
	Low    int // values below Lower
	High   int // values above Upper
	// Share is the fraction of values outside either fence.
	Share float64
}

// Outliers returns the count beyond both fences.
func (f Fence) Outliers() int { return f.Low + f.High }

// IQRFences computes outlier fences for every attribute column.
func IQRFences(ds *dataset.Dataset) []Fence {
	out := make([]Fence, 0, wine.NumAttributes)
	for _, a := range wine.Attributes() {
		out = append(out, fenceColumn(a.String(), ds.Column(a)))
	}
	return out
}

func fenceColumn(name string, values []float64) Fence {
	f := Fence{Column: name}
	if len(values) == 0 {
		return f
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)
	iqr := q3 - q1
	f.Lower = q1 - iqrK*iqr
	f.Upper = q3 + iqrK*iqr

	for _, v := range values {
		switch {
		case v < f.Lower:
			f.Low++
		case v > f.Upper:
			f.High++
		}
	}
	f.Share = float64(f.Low+f.High) / float64(len(values))
	return f
}
