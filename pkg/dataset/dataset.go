// Package dataset loads the two UCI wine-quality files into labeled
// in-memory tables and provides the combining, streaming, and splitting
// operations the analysis walkthroughs are built on.
//
// Datasets are immutable by convention: every operation that would change
// one returns a copy instead.
package dataset

import (
	"fmt"
	"slices"

	"winescope/pkg/wine"
)

// Dataset is an ordered collection of labeled samples loaded from one source
// file, or the concatenation of several such collections.
type Dataset struct {
	Name    string   // provenance: file base name, or the name given to Merge
	Header  []string // column names as read, canonical after validation
	Samples []wine.Sample
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.Samples) }

// Column returns a copy of one attribute column.
func (d *Dataset) Column(a wine.Attribute) []float64 {
	out := make([]float64, len(d.Samples))
	for i, s := range d.Samples {
		out[i] = s.Features[a]
	}
	return out
}

// Qualities returns a copy of the quality scores.
func (d *Dataset) Qualities() []int {
	out := make([]int, len(d.Samples))
	for i, s := range d.Samples {
		out[i] = s.Quality
	}
	return out
}

// ColorCounts tallies samples per class label.
func (d *Dataset) ColorCounts() map[wine.Color]int {
	counts := make(map[wine.Color]int, 2)
	for _, s := range d.Samples {
		counts[s.Color]++
	}
	return counts
}

// Subset returns the samples carrying the given label, in original order.
func (d *Dataset) Subset(c wine.Color) *Dataset {
	sub := &Dataset{
		Name:   fmt.Sprintf("%s[%s]", d.Name, c),
		Header: slices.Clone(d.Header),
	}
	for _, s := range d.Samples {
		if s.Color == c {
			sub.Samples = append(sub.Samples, s)
		}
	}
	return sub
}

// FeatureMatrix returns the attribute values as a rows×11 matrix copy,
// quality and label excluded.
func (d *Dataset) FeatureMatrix() [][]float64 {
	out := make([][]float64, len(d.Samples))
	for i, s := range d.Samples {
		row := make([]float64, wine.NumAttributes)
		copy(row, s.Features[:])
		out[i] = row
	}
	return out
}

// Merge concatenates parts in argument order under a new name. All parts
// must share an identical column schema; the result's row count is the sum
// of the parts'.
func Merge(name string, parts ...*Dataset) (*Dataset, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("merge %q: no datasets given", name)
	}
	merged := &Dataset{Name: name, Header: slices.Clone(parts[0].Header)}
	total := 0
	for _, p := range parts {
		total += p.Len()
	}
	merged.Samples = make([]wine.Sample, 0, total)
	for _, p := range parts {
		if !slices.Equal(p.Header, merged.Header) {
			return nil, fmt.Errorf("merge %q: %w: %q has columns %v", name, ErrSchemaMismatch, p.Name, p.Header)
		}
		merged.Samples = append(merged.Samples, p.Samples...)
	}
	return merged, nil
}
