// Package preprocess prepares feature matrices for modeling work that
// follows the exploratory analysis. Scalers learn their parameters from one
// table and apply them to another, so statistics fitted on training rows
// never leak information from a held-out set.
package preprocess

import (
	"errors"
	"fmt"
)

// ErrNotFitted reports a Transform call before Fit.
var ErrNotFitted = errors.New("transformer not fitted")

// Transformer learns column parameters from a feature matrix and applies
// them to matrices of the same width.
type Transformer interface {
	Fit(X [][]float64) error
	Transform(X [][]float64) ([][]float64, error)
}

// FitTransform fits t on X and returns X transformed by it.
func FitTransform(t Transformer, X [][]float64) ([][]float64, error) {
	if err := t.Fit(X); err != nil {
		return nil, err
	}
	return t.Transform(X)
}

// Pipeline chains transformers: each step is fitted on the output of the
// previous one, exactly as it will see data at transform time.
type Pipeline struct {
	steps []Transformer
}

var _ Transformer = (*Pipeline)(nil)

// NewPipeline builds a pipeline over steps, applied in order.
func NewPipeline(steps ...Transformer) *Pipeline {
	return &Pipeline{steps: steps}
}

// Fit fits every step in sequence.
func (p *Pipeline) Fit(X [][]float64) error {
	cur := X
	for i, step := range p.steps {
		if err := step.Fit(cur); err != nil {
			return fmt.Errorf("pipeline step %d: %w", i, err)
		}
		var err error
		cur, err = step.Transform(cur)
		if err != nil {
			return fmt.Errorf("pipeline step %d: %w", i, err)
		}
	}
	return nil
}

// Transform runs X through every fitted step.
func (p *Pipeline) Transform(X [][]float64) ([][]float64, error) {
	cur := X
	for i, step := range p.steps {
		var err error
		cur, err = step.Transform(cur)
		if err != nil {
			return nil, fmt.Errorf("pipeline step %d: %w", i, err)
		}
	}
	return cur, nil
}

// width validates that X is a non-empty rectangular matrix and returns its
// column count.
func width(X [][]float64) (int, error) {
	if len(X) == 0 || len(X[0]) == 0 {
		return 0, errors.New("empty feature matrix")
	}
	w := len(X[0])
	for i, row := range X {
		if len(row) != w {
			return 0, fmt.Errorf("ragged feature matrix: row %d has %d columns, want %d", i, len(row), w)
		}
	}
	return w, nil
}

// column copies column j of X.
func column(X [][]float64, j int) []float64 {
	out := make([]float64, len(X))
	for i, row := range X {
		out[i] = row[j]
	}
	return out
}
