package config

import (
	"context"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRY_MINUTES", "30")
	t.Setenv("SERVICE_TOKEN", "svc-token")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Mongo.Database != "ledgerkeep" {
		t.Fatalf("mongo db default = %q", cfg.Mongo.Database)
	}
	if cfg.AccessTokenTTL() != 30*time.Minute {
		t.Fatalf("ttl = %v, want 30m", cfg.AccessTokenTTL())
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRY_MINUTES", "")
	t.Setenv("SERVICE_TOKEN", "")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error for missing required variables")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9999")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9999" || cfg.Redis.DB != 3 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}
