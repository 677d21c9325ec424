package figures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winescope/pkg/dataset"
	"winescope/pkg/profile"
	"winescope/pkg/wine"
)

func testDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	mk := func(i int, c wine.Color, alcohol float64, quality int) wine.Sample {
		s := wine.Sample{Color: c, Quality: quality}
		for j := range s.Features {
			s.Features[j] = float64((i+j*j)%5) + 1
		}
		s.Features[wine.Alcohol] = alcohol
		return s
	}
	return &dataset.Dataset{
		Name:   "figures",
		Header: wine.Header(),
		Samples: []wine.Sample{
			mk(0, wine.Red, 9.4, 5),
			mk(1, wine.Red, 9.8, 5),
			mk(2, wine.Red, 11.2, 6),
			mk(3, wine.White, 8.8, 6),
			mk(4, wine.White, 9.5, 6),
			mk(5, wine.White, 10.1, 7),
			mk(6, wine.White, 9.9, 6),
		},
	}
}

// renderOK asserts that the figure file was written and is not empty.
func renderOK(t *testing.T, path string) {
	t.Helper()
	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, fi.Size())
}

func TestClassBalanceFigure(t *testing.T) {
	ds := testDataset(t)
	path := filepath.Join(t.TempDir(), "class_balance.png")

	require.NoError(t, ClassBalance(profile.ClassBalance(ds), path))
	renderOK(t, path)
}

func TestQualityDistributionFigure(t *testing.T) {
	ds := testDataset(t)
	path := filepath.Join(t.TempDir(), "quality.png")

	require.NoError(t, QualityDistribution(profile.QualityDistribution(ds), path))
	renderOK(t, path)

	t.Run("no scores", func(t *testing.T) {
		err := QualityDistribution(profile.QualityCounts{}, filepath.Join(t.TempDir(), "x.png"))
		assert.Error(t, err)
	})
}

func TestFeatureHistogramFigure(t *testing.T) {
	ds := testDataset(t)
	h, err := profile.NewHistogram(ds, wine.Alcohol, 8)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "alcohol_hist.png")
	require.NoError(t, FeatureHistogram(h, path))
	renderOK(t, path)
}

func TestFeatureBoxFigure(t *testing.T) {
	ds := testDataset(t)
	path := filepath.Join(t.TempDir(), "alcohol_box.png")

	require.NoError(t, FeatureBox(ds, wine.Alcohol, path))
	renderOK(t, path)

	t.Run("missing class", func(t *testing.T) {
		redOnly := ds.Subset(wine.Red)
		err := FeatureBox(redOnly, wine.Alcohol, filepath.Join(t.TempDir(), "x.png"))
		assert.Error(t, err)
	})
}

func TestCorrelationHeatMapFigure(t *testing.T) {
	ds := testDataset(t)
	m, err := profile.Correlations(ds)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "corr.png")
	require.NoError(t, CorrelationHeatMap(m, path))
	renderOK(t, path)

	t.Run("empty matrix", func(t *testing.T) {
		assert.Error(t, CorrelationHeatMap(nil, filepath.Join(t.TempDir(), "x.png")))
	})
}
