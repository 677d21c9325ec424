package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "data/winequality-red.csv", cfg.Data.Red)
	assert.Equal(t, "results", cfg.Results)
	assert.Equal(t, 30, cfg.Bins)
	assert.EqualValues(t, 42, cfg.Seed)
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := writeConfig(t, `
data:
  red: /srv/wine/red.csv
  white: /srv/wine/white.csv
bins: 12
log_level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/wine/red.csv", cfg.Data.Red)
	assert.Equal(t, 12, cfg.Bins)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched keys keep their defaults.
	assert.Equal(t, "results", cfg.Results)
	assert.Equal(t, 10, cfg.TopCorrelations)
	assert.EqualValues(t, 42, cfg.Seed)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"broken yaml":   "data: [unclosed",
		"zero bins":     "bins: 0",
		"bad level":     "log_level: chatty",
		"negative rows": "sample_rows: -1",
		"empty results": `results: ""`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoggerHonorsLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "warn"

	log, err := cfg.Logger()
	require.NoError(t, err)
	defer log.Sync()

	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.ErrorLevel))
}
