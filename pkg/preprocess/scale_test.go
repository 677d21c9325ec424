package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardScaler(t *testing.T) {
	X := [][]float64{{2, 10}, {4, 20}, {6, 30}}

	var s StandardScaler
	got, err := FitTransform(&s, X)
	require.NoError(t, err)

	want := [][]float64{{-1, -1}, {0, 0}, {1, 1}}
	for i := range want {
		for j := range want[i] {
			assert.InDeltaf(t, want[i][j], got[i][j], 1e-12, "cell %d,%d", i, j)
		}
	}

	// Held-out rows are scaled with the fitted parameters, not their own.
	test, err := s.Transform([][]float64{{8, 40}})
	require.NoError(t, err)
	assert.InDelta(t, 2, test[0][0], 1e-12)
	assert.InDelta(t, 2, test[0][1], 1e-12)

	// The input matrix is not modified.
	assert.Equal(t, [][]float64{{2, 10}, {4, 20}, {6, 30}}, X)
}

func TestMinMaxScaler(t *testing.T) {
	var s MinMaxScaler
	got, err := FitTransform(&s, [][]float64{{2}, {4}, {6}})
	require.NoError(t, err)
	assert.InDelta(t, 0, got[0][0], 1e-12)
	assert.InDelta(t, 0.5, got[1][0], 1e-12)
	assert.InDelta(t, 1, got[2][0], 1e-12)

	t.Run("constant column maps to zero", func(t *testing.T) {
		var c MinMaxScaler
		got, err := FitTransform(&c, [][]float64{{5, 1}, {5, 2}})
		require.NoError(t, err)
		assert.Zero(t, got[0][0])
		assert.Zero(t, got[1][0])
	})
}

func TestQuantileInterpolatesOnRank(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 100}
	assert.InDelta(t, 2, quantile(sorted, 0.25), 1e-12)
	assert.InDelta(t, 3, quantile(sorted, 0.5), 1e-12)
	assert.InDelta(t, 4, quantile(sorted, 0.75), 1e-12)

	// Rank 0.25*(n-1) falls between values on even-length columns.
	assert.InDelta(t, 1.75, quantile([]float64{1, 2, 3, 4}, 0.25), 1e-12)
}

func TestRobustScalerShrugsOffOutliers(t *testing.T) {
	var s RobustScaler
	got, err := FitTransform(&s, [][]float64{{1}, {2}, {3}, {4}, {100}})
	require.NoError(t, err)

	// Median 3, IQR 2: the outlier moves only its own scaled value.
	want := []float64{-1, -0.5, 0, 0.5, 48.5}
	for i, w := range want {
		assert.InDeltaf(t, w, got[i][0], 1e-12, "row %d", i)
	}
}

func TestTransformerErrors(t *testing.T) {
	t.Run("not fitted", func(t *testing.T) {
		var s StandardScaler
		_, err := s.Transform([][]float64{{1}})
		require.ErrorIs(t, err, ErrNotFitted)
	})

	t.Run("empty matrix", func(t *testing.T) {
		var s StandardScaler
		require.Error(t, s.Fit(nil))
		require.Error(t, s.Fit([][]float64{{}}))
	})

	t.Run("ragged matrix", func(t *testing.T) {
		var s MinMaxScaler
		require.Error(t, s.Fit([][]float64{{1, 2}, {3}}))
	})

	t.Run("width mismatch", func(t *testing.T) {
		var s RobustScaler
		require.NoError(t, s.Fit([][]float64{{1, 2}, {3, 4}}))
		_, err := s.Transform([][]float64{{1}})
		require.Error(t, err)
	})
}

func TestPipelineChainsSteps(t *testing.T) {
	var p Transformer = NewPipeline(&StandardScaler{}, &MinMaxScaler{})

	got, err := FitTransform(p, [][]float64{{2}, {4}, {6}})
	require.NoError(t, err)

	// Standardized to {-1,0,1}, then min-max onto [0,1].
	assert.InDelta(t, 0, got[0][0], 1e-12)
	assert.InDelta(t, 0.5, got[1][0], 1e-12)
	assert.InDelta(t, 1, got[2][0], 1e-12)
}
