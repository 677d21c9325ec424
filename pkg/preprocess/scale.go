package preprocess

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// StandardScaler centers each column on its mean and scales to unit sample
// variance.
type StandardScaler struct {
	Mean []float64
	Std  []float64
}

var _ Transformer = (*StandardScaler)(nil)

// Fit learns per-column mean and standard deviation.
func (s *StandardScaler) Fit(X [][]float64) error {
	w, err := width(X)
	if err != nil {
		return err
	}
	s.Mean = make([]float64, w)
	s.Std = make([]float64, w)
	for j := 0; j < w; j++ {
		col := column(X, j)
		s.Mean[j] = stat.Mean(col, nil)
		s.Std[j] = safeScale(stat.StdDev(col, nil))
	}
	return nil
}

// Transform applies (x - mean) / std per column.
func (s *StandardScaler) Transform(X [][]float64) ([][]float64, error) {
	return apply(X, s.Mean, func(j int, v float64) float64 {
		return (v - s.Mean[j]) / s.Std[j]
	})
}

// MinMaxScaler rescales each column linearly onto [0, 1].
type MinMaxScaler struct {
	Min []float64
	Max []float64
}

var _ Transformer = (*MinMaxScaler)(nil)

// Fit learns per-column minima and maxima.
func (s *MinMaxScaler) Fit(X [][]float64) error {
	w, err := width(X)
	if err != nil {
		return err
	}
	s.Min = make([]float64, w)
	s.Max = make([]float64, w)
	for j := 0; j < w; j++ {
		col := column(X, j)
		s.Min[j] = slices.Min(col)
		s.Max[j] = slices.Max(col)
	}
	return nil
}

// Transform applies (x - min) / (max - min) per column. A constant column
// maps to 0.
func (s *MinMaxScaler) Transform(X [][]float64) ([][]float64, error) {
	return apply(X, s.Min, func(j int, v float64) float64 {
		return (v - s.Min[j]) / safeScale(s.Max[j]-s.Min[j])
	})
}

// RobustScaler centers on the median and scales by the interquartile range,
// so fitted parameters shrug off the heavy tails the outlier fences flag.
type RobustScaler struct {
	Median []float64
	IQR    []float64
}

var _ Transformer = (*RobustScaler)(nil)

// Fit learns per-column median and IQR.
func (s *RobustScaler) Fit(X [][]float64) error {
	w, err := width(X)
	if err != nil {
		return err
	}
	s.Median = make([]float64, w)
	s.IQR = make([]float64, w)
	for j := 0; j < w; j++ {
		col := column(X, j)
		slices.Sort(col)
		s.Median[j] = quantile(col, 0.5)
		s.IQR[j] = safeScale(quantile(col, 0.75) - quantile(col, 0.25))
	}
	return nil
}

// quantile interpolates linearly on the rank p*(n-1) of the sorted values,
// matching the quartile convention the profile package reports.
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

// Transform applies (x - median) / IQR per column.
func (s *RobustScaler) Transform(X [][]float64) ([][]float64, error) {
	return apply(X, s.Median, func(j int, v float64) float64 {
		return (v - s.Median[j]) / s.IQR[j]
	})
}

// safeScale turns a zero or undefined spread into 1 so constant columns
// pass through centering unchanged instead of dividing by zero.
func safeScale(v float64) float64 {
	if v == 0 || math.IsNaN(v) {
		return 1
	}
	return v
}

// apply runs fn over every cell, after checking the matrix against the
// fitted parameter width.
func apply(X [][]float64, params []float64, fn func(j int, v float64) float64) ([][]float64, error) {
	if len(params) == 0 {
		return nil, ErrNotFitted
	}
	w, err := width(X)
	if err != nil {
		return nil, err
	}
	if w != len(params) {
		return nil, fmt.Errorf("fitted on %d columns, input has %d", len(params), w)
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		out[i] = make([]float64, w)
		for j, v := range row {
			out[i][j] = fn(j, v)
		}
	}
	return out, nil
}
