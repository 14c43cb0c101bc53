package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Environment != "development" {
		t.Errorf("Server.Environment = %q, want development", cfg.Server.Environment)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "*" {
		t.Errorf("Server.AllowedOrigins = %v, want [*]", cfg.Server.AllowedOrigins)
	}
	if cfg.Catalog.Path != "data/catalog.json" {
		t.Errorf("Catalog.Path = %q, want data/catalog.json", cfg.Catalog.Path)
	}
	if cfg.Cache.TTL != 15*time.Minute {
		t.Errorf("Cache.TTL = %v, want 15m", cfg.Cache.TTL)
	}
	if cfg.RateLimit.RequestsPerSecond != 25.0 {
		t.Errorf("RateLimit.RequestsPerSecond = %v, want 25", cfg.RateLimit.RequestsPerSecond)
	}
	if cfg.RateLimit.Burst != 50 {
		t.Errorf("RateLimit.Burst = %d, want 50", cfg.RateLimit.Burst)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FIXTUREMATCH_SERVER_PORT", "9090")
	t.Setenv("FIXTUREMATCH_CATALOG_PATH", "/srv/catalog.json")
	t.Setenv("FIXTUREMATCH_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Catalog.Path != "/srv/catalog.json" {
		t.Errorf("Catalog.Path = %q, want /srv/catalog.json", cfg.Catalog.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Catalog:   CatalogConfig{Path: "data/catalog.json"},
		RateLimit: RateLimitConfig{RequestsPerSecond: 25, Burst: 50},
	}

	t.Run("valid config", func(t *testing.T) {
		cfg := valid
		if err := validate(&cfg); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("missing catalog path", func(t *testing.T) {
		cfg := valid
		cfg.Catalog.Path = ""
		if err := validate(&cfg); err == nil {
			t.Error("validate() error = nil, want catalog path error")
		}
	})

	t.Run("non-positive rate", func(t *testing.T) {
		cfg := valid
		cfg.RateLimit.RequestsPerSecond = 0
		if err := validate(&cfg); err == nil {
			t.Error("validate() error = nil, want rate error")
		}
	})

	t.Run("non-positive burst", func(t *testing.T) {
		cfg := valid
		cfg.RateLimit.Burst = -1
		if err := validate(&cfg); err == nil {
			t.Error("validate() error = nil, want burst error")
		}
	})
}
