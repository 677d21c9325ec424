package dataset

import (
	"encoding/csv"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winescope/pkg/wine"
)

const (
	redFixture   = 6
	whiteFixture = 4
)

func fixture(name string) string {
	return filepath.Join("testdata", name)
}

func loadCombined(t *testing.T) *Dataset {
	t.Helper()
	ds, err := NewLoader(nil).LoadPair(fixture("winequality-red.csv"), fixture("winequality-white.csv"))
	require.NoError(t, err)
	return ds
}

func TestReadFileParsesUCILayout(t *testing.T) {
	ds, err := NewLoader(nil).ReadFile(fixture("winequality-red.csv"), wine.Red)
	require.NoError(t, err)

	assert.Equal(t, "winequality-red.csv", ds.Name)
	assert.Equal(t, wine.Header(), ds.Header)
	require.Equal(t, redFixture, ds.Len())

	first := ds.Samples[0]
	assert.Equal(t, 7.4, first.Features[wine.FixedAcidity])
	assert.Equal(t, 0.076, first.Features[wine.Chlorides])
	assert.Equal(t, 9.4, first.Features[wine.Alcohol])
	assert.Equal(t, 5, first.Quality)
	assert.Equal(t, wine.Red, first.Color)
}

func TestLoadPairSchemasAreIdentical(t *testing.T) {
	l := NewLoader(nil)
	red, err := l.ReadFile(fixture("winequality-red.csv"), wine.Red)
	require.NoError(t, err)
	white, err := l.ReadFile(fixture("winequality-white.csv"), wine.White)
	require.NoError(t, err)

	assert.Equal(t, red.Header, white.Header)
	assert.Equal(t, wine.Header(), red.Header)
}

func TestLoadPairCountsAndOrder(t *testing.T) {
	ds := loadCombined(t)

	require.Equal(t, redFixture+whiteFixture, ds.Len())
	assert.Equal(t, map[wine.Color]int{wine.Red: redFixture, wine.White: whiteFixture}, ds.ColorCounts())

	// Red rows precede white rows in the combined table.
	for i, s := range ds.Samples {
		want := wine.Red
		if i >= redFixture {
			want = wine.White
		}
		assert.Equalf(t, want, s.Color, "row %d", i)
	}
}

func TestLoadPairLabelsFollowOrigin(t *testing.T) {
	ds := loadCombined(t)

	red := ds.Subset(wine.Red)
	require.Equal(t, redFixture, red.Len())
	// Spot values tie the labels back to the source files: 20.7 g/dm³
	// residual sugar is the first white row, not a red one.
	white := ds.Subset(wine.White)
	require.Equal(t, whiteFixture, white.Len())
	assert.Equal(t, 20.7, white.Samples[0].Features[wine.ResidualSugar])
	assert.Equal(t, 11.2, red.Samples[3].Features[wine.FixedAcidity])
}

func TestLoadPairIsDeterministic(t *testing.T) {
	a := loadCombined(t)
	b := loadCombined(t)
	assert.Empty(t, cmp.Diff(a, b))
}

func TestReadFileErrors(t *testing.T) {
	l := NewLoader(nil)

	t.Run("missing file", func(t *testing.T) {
		_, err := l.ReadFile(fixture("no-such.csv"), wine.Red)
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := l.ReadFile(fixture("empty.csv"), wine.Red)
		require.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("comma delimited", func(t *testing.T) {
		_, err := l.ReadFile(fixture("comma.csv"), wine.Red)
		require.ErrorIs(t, err, ErrBadHeader)
	})

	t.Run("truncated row", func(t *testing.T) {
		_, err := l.ReadFile(fixture("truncated.csv"), wine.Red)
		require.ErrorIs(t, err, csv.ErrFieldCount)
		assert.Contains(t, err.Error(), "row 3")
	})

	t.Run("unparsable value names the column", func(t *testing.T) {
		_, err := l.ReadFile(fixture("badvalue.csv"), wine.Red)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chlorides")
	})

	t.Run("quality outside scale", func(t *testing.T) {
		_, err := l.ReadFile(fixture("badquality.csv"), wine.Red)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "outside")
	})

	t.Run("unknown color", func(t *testing.T) {
		_, err := l.ReadFile(fixture("winequality-red.csv"), wine.Color("rosé"))
		require.Error(t, err)
	})
}

func TestMergeRejectsSchemaMismatch(t *testing.T) {
	red, err := NewLoader(nil).ReadFile(fixture("winequality-red.csv"), wine.Red)
	require.NoError(t, err)

	odd := &Dataset{Name: "odd", Header: []string{"alcohol", "quality"}}
	_, err = Merge("combined", red, odd)
	require.ErrorIs(t, err, ErrSchemaMismatch)

	_, err = Merge("combined")
	require.Error(t, err)
}

func TestDatasetAccessorsCopy(t *testing.T) {
	ds := loadCombined(t)

	col := ds.Column(wine.Alcohol)
	require.Len(t, col, ds.Len())
	assert.Equal(t, 9.4, col[0])
	assert.Equal(t, 8.8, col[redFixture])
	col[0] = 0
	assert.Equal(t, 9.4, ds.Samples[0].Features[wine.Alcohol])

	q := ds.Qualities()
	require.Len(t, q, ds.Len())
	assert.Equal(t, 5, q[0])
	assert.Equal(t, 6, q[len(q)-1])

	m := ds.FeatureMatrix()
	require.Len(t, m, ds.Len())
	require.Len(t, m[0], wine.NumAttributes)
	m[0][0] = 0
	assert.Equal(t, 7.4, ds.Samples[0].Features[wine.FixedAcidity])
}
