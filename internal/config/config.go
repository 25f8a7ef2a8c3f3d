// Package config loads the YAML run configuration of the patclust command.
//
// Example file:
//
//	max_dist: 0.4
//	concurrent: true
//	workers: 8
//	deduplicate: false
//	log:
//	  level: info
//	  format: text
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/katalvlaran/patclust/cluster"
	"github.com/katalvlaran/patclust/internal/logging"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the clustering run configuration.
type Config struct {
	// MaxDist is the normalized acceptance threshold, in [0, 1].
	MaxDist float64 `yaml:"max_dist"`

	// Concurrent selects the parallel nearest-representative search.
	Concurrent bool `yaml:"concurrent"`

	// Workers caps goroutines per search; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	// Deduplicate clusters one reference per group of equal automata.
	Deduplicate bool `yaml:"deduplicate"`

	Log LogConfig `yaml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		MaxDist:    cluster.DefaultMaxDist,
		Concurrent: true,
		Workers:    0,
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatText,
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// Default(). Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges and logging names.
func (c *Config) Validate() error {
	if math.IsNaN(c.MaxDist) || c.MaxDist < 0 || c.MaxDist > 1 {
		return fmt.Errorf("%w: max_dist=%g, want 0 <= max_dist <= 1", ErrInvalid, c.MaxDist)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers=%d, want >= 0", ErrInvalid, c.Workers)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	switch c.Log.Format {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: log.format=%q", ErrInvalid, c.Log.Format)
	}

	return nil
}

// ClusterOptions converts c into cluster options using logger.
func (c *Config) ClusterOptions(logger *slog.Logger) []cluster.Option {
	opts := []cluster.Option{
		cluster.WithMaxDist(c.MaxDist),
		cluster.WithConcurrent(c.Concurrent),
		cluster.WithLogger(logger),
	}
	if c.Workers > 0 {
		opts = append(opts, cluster.WithWorkers(c.Workers))
	}

	return opts
}
