package preprocess

import (
	"slices"

	"winescope/pkg/dataset"
	"winescope/pkg/wine"
)

// Deduplicate returns a copy of ds with later occurrences of exact
// duplicate rows removed, keeping first-seen order. The input is left
// untouched.
func Deduplicate(ds *dataset.Dataset) *dataset.Dataset {
	seen := make(map[wine.Sample]bool, ds.Len())
	out := &dataset.Dataset{
		Name:    ds.Name + "[dedup]",
		Header:  slices.Clone(ds.Header),
		Samples: make([]wine.Sample, 0, ds.Len()),
	}
	for _, s := range ds.Samples {
		if seen[s] {
			continue
		}
		seen[s] = true
		out.Samples = append(out.Samples, s)
	}
	return out
}
