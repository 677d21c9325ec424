package profile

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"winescope/pkg/dataset"
	"winescope/pkg/wine"
)

// Matrix is the Pearson correlation matrix over the eleven attributes plus
// the quality score, in schema order.
type Matrix struct {
	Columns []string
	R       *mat.SymDense
}

// Correlations computes the pairwise Pearson correlations of ds.
func Correlations(ds *dataset.Dataset) (*Matrix, error) {
	n := ds.Len()
	if n < 2 {
		return nil, fmt.Errorf("correlations %q: need at least two rows, got %d", ds.Name, n)
	}
	cols := wine.NumAttributes + 1
	data := mat.NewDense(n, cols, nil)
	for i, s := range ds.Samples {
		for j, v := range s.Features {
			data.Set(i, j, v)
		}
		data.Set(i, cols-1, float64(s.Quality))
	}

	r := mat.NewSymDense(cols, nil)
	stat.CorrelationMatrix(r, data, nil)
	return &Matrix{Columns: wine.Header(), R: r}, nil
}

// At returns the correlation of columns i and j.
func (m *Matrix) At(i, j int) float64 { return m.R.At(i, j) }

// Pair is one off-diagonal entry of the correlation matrix.
type Pair struct {
	A, B string
	R    float64
}

// TopPairs returns the k strongest off-diagonal correlations ordered by
// descending |r|. Ties and NaNs (constant columns) sort last.
func (m *Matrix) TopPairs(k int) []Pair {
	var pairs []Pair
	for i := range m.Columns {
		for j := i + 1; j < len(m.Columns); j++ {
			pairs = append(pairs, Pair{A: m.Columns[i], B: m.Columns[j], R: m.R.At(i, j)})
		}
	}
	slices.SortStableFunc(pairs, func(a, b Pair) int {
		return cmp.Compare(math.Abs(b.R), math.Abs(a.R))
	})
	if k < 0 || k > len(pairs) {
		k = len(pairs)
	}
	return pairs[:k]
}
