// Package config loads the optional winescope.yaml settings file. Absent
// file or absent keys fall back to defaults, so the walkthroughs run with
// no configuration at all.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"winescope/pkg/dataset"
)

// DefaultFile is where Load looks when no explicit path is given.
const DefaultFile = "winescope.yaml"

// Config holds every knob the analysis walkthroughs read.
type Config struct {
	Data struct {
		Red   string `yaml:"red"`
		White string `yaml:"white"`
	} `yaml:"data"`
	// Results is the directory figures and reports are written into.
	Results string `yaml:"results"`
	// Bins is the histogram bin count.
	Bins int `yaml:"bins"`
	// TopCorrelations caps the strongest-correlations table.
	TopCorrelations int `yaml:"top_correlations"`
	// SampleRows caps the report's preview table.
	SampleRows int    `yaml:"sample_rows"`
	Seed       int64  `yaml:"seed"`
	LogLevel   string `yaml:"log_level"`
}

// DefaultConfig returns the settings used when winescope.yaml is absent.
func DefaultConfig() *Config {
	cfg := &Config{
		Results:         "results",
		Bins:            30,
		TopCorrelations: 10,
		SampleRows:      5,
		Seed:            dataset.DefaultSeed,
		LogLevel:        "info",
	}
	cfg.Data.Red = "data/winequality-red.csv"
	cfg.Data.White = "data/winequality-white.csv"
	return cfg
}

// Load reads the config at path, layering it over the defaults. A missing
// file is not an error; a present but invalid one is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Data.Red == "" || c.Data.White == "" {
		return errors.New("data.red and data.white must both be set")
	}
	if c.Results == "" {
		return errors.New("results directory must be set")
	}
	if c.Bins < 1 {
		return fmt.Errorf("bins must be positive, got %d", c.Bins)
	}
	if c.TopCorrelations < 0 {
		return fmt.Errorf("top_correlations must not be negative, got %d", c.TopCorrelations)
	}
	if c.SampleRows < 0 {
		return fmt.Errorf("sample_rows must not be negative, got %d", c.SampleRows)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Logger builds a console logger at the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
