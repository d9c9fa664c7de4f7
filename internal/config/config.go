package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for the engine knobs. Concurrency deliberately stays small:
// the cap exists to avoid flooding the OS with version-probe processes.
const (
	DefaultConcurrency    = 3
	DefaultCacheTTL       = 5 * time.Minute
	DefaultCommandTimeout = 10 * time.Second

	maxConcurrency = 16
)

// Config holds the engine-level settings read from config.yaml.
type Config struct {
	Concurrency    int
	CacheTTL       time.Duration
	CommandTimeout time.Duration
}

// fileConfig is the on-disk shape; durations are human-readable strings
// ("5m", "10s").
type fileConfig struct {
	Concurrency    int    `yaml:"concurrency"`
	CacheTTL       string `yaml:"cache_ttl"`
	CommandTimeout string `yaml:"command_timeout"`
}

// Load reads config.yaml from Dir(), writing defaults on first run.
// Invalid or missing values hydrate to their defaults; concurrency is
// clamped to [1, 16] so the probe throttle can be tuned but not removed.
func Load() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return defaults(), err
	}
	path := filepath.Join(dir, "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaults()
			if werr := writeDefault(path, cfg); werr != nil {
				return cfg, werr
			}
			return cfg, nil
		}
		return defaults(), err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return defaults(), err
	}
	return hydrate(fc), nil
}

func defaults() Config {
	return Config{
		Concurrency:    DefaultConcurrency,
		CacheTTL:       DefaultCacheTTL,
		CommandTimeout: DefaultCommandTimeout,
	}
}

func hydrate(fc fileConfig) Config {
	cfg := defaults()
	if fc.Concurrency > 0 {
		cfg.Concurrency = fc.Concurrency
	}
	if cfg.Concurrency > maxConcurrency {
		cfg.Concurrency = maxConcurrency
	}
	if d, err := time.ParseDuration(fc.CacheTTL); err == nil && d > 0 {
		cfg.CacheTTL = d
	}
	if d, err := time.ParseDuration(fc.CommandTimeout); err == nil && d > 0 {
		cfg.CommandTimeout = d
	}
	return cfg
}

func writeDefault(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	raw, err := yaml.Marshal(fileConfig{
		Concurrency:    cfg.Concurrency,
		CacheTTL:       cfg.CacheTTL.String(),
		CommandTimeout: cfg.CommandTimeout.String(),
	})
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
