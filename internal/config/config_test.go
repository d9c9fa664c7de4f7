package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tu "toolctl/internal/testutil"
)

func TestLoad_WritesDefaultsOnFirstRun(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)() // fallback

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Concurrency != DefaultConcurrency {
		t.Fatalf("concurrency = %d, want %d", cfg.Concurrency, DefaultConcurrency)
	}
	if cfg.CacheTTL != DefaultCacheTTL {
		t.Fatalf("cacheTTL = %v, want %v", cfg.CacheTTL, DefaultCacheTTL)
	}

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
}

func TestLoad_ReadsCustomValues(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir error: %v", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	raw := "concurrency: 5\ncache_ttl: 90s\ncommand_timeout: 3s\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Concurrency != 5 {
		t.Fatalf("concurrency = %d", cfg.Concurrency)
	}
	if cfg.CacheTTL != 90*time.Second {
		t.Fatalf("cacheTTL = %v", cfg.CacheTTL)
	}
	if cfg.CommandTimeout != 3*time.Second {
		t.Fatalf("commandTimeout = %v", cfg.CommandTimeout)
	}
}

func TestLoad_HydratesInvalidValues(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	dir, _ := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	raw := "concurrency: 999\ncache_ttl: nonsense\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Concurrency != maxConcurrency {
		t.Fatalf("concurrency not clamped: %d", cfg.Concurrency)
	}
	if cfg.CacheTTL != DefaultCacheTTL {
		t.Fatalf("invalid ttl not defaulted: %v", cfg.CacheTTL)
	}
}
