package dataset

import (
	"fmt"
	"math/rand"
	"slices"

	"winescope/pkg/wine"
)

// DefaultSeed fixes the random source for every shuffling operation in the
// project, so any two runs produce identical partitions.
const DefaultSeed int64 = 42

// StratifiedSplit partitions the dataset into train and test sets while
// preserving the red/white mix on both sides: each class is shuffled and cut
// separately, then the slices are reassembled red rows first. The same seed
// always yields the same partition.
func StratifiedSplit(ds *Dataset, testFrac float64, seed int64) (train, test *Dataset, err error) {
	if testFrac <= 0 || testFrac >= 1 {
		return nil, nil, fmt.Errorf("split %q: test fraction %v outside (0, 1)", ds.Name, testFrac)
	}

	rng := rand.New(rand.NewSource(seed))
	train = &Dataset{Name: ds.Name + "[train]", Header: slices.Clone(ds.Header)}
	test = &Dataset{Name: ds.Name + "[test]", Header: slices.Clone(ds.Header)}

	for _, c := range []wine.Color{wine.Red, wine.White} {
		var idx []int
		for i, s := range ds.Samples {
			if s.Color == c {
				idx = append(idx, i)
			}
		}
		rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

		nTest := int(float64(len(idx)) * testFrac)
		for k, i := range idx {
			if k < nTest {
				test.Samples = append(test.Samples, ds.Samples[i])
			} else {
				train.Samples = append(train.Samples, ds.Samples[i])
			}
		}
	}
	return train, test, nil
}
