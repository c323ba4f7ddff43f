package config

import (
	"os"
	"testing"
	"time"
)

var configKeys = []string{
	"APP_ENV", "HTTP_HOST", "HTTP_PORT",
	"DB_DSN", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"JWT_ACCESS_SECRET", "JWT_REFRESH_SECRET", "JWT_ACCESS_TTL", "JWT_REFRESH_TTL",
	"PAGE_SIZE",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		os.Unsetenv(key)
	}
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DSN", "host=localhost user=fleet dbname=fleet sslmode=disable")
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want %q", cfg.Environment, "development")
	}
	if cfg.HTTP.Host != "0.0.0.0" {
		t.Errorf("HTTP.Host = %q, want %q", cfg.HTTP.Host, "0.0.0.0")
	}
	if cfg.HTTP.Port != 8000 {
		t.Errorf("HTTP.Port = %d, want 8000", cfg.HTTP.Port)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("Redis.Addr = %q, want %q", cfg.Redis.Addr, "localhost:6379")
	}
	if cfg.Auth.AccessTTL != 30*time.Minute {
		t.Errorf("Auth.AccessTTL = %v, want 30m", cfg.Auth.AccessTTL)
	}
	if cfg.Auth.RefreshTTL != 24*time.Hour {
		t.Errorf("Auth.RefreshTTL = %v, want 24h", cfg.Auth.RefreshTTL)
	}
	if cfg.Pagination.PageSize != 10 {
		t.Errorf("Pagination.PageSize = %d, want 10", cfg.Pagination.PageSize)
	}
}

func TestLoadCustom(t *testing.T) {
	clearConfigEnv(t)
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("JWT_ACCESS_TTL", "15m")
	t.Setenv("PAGE_SIZE", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Environment != "production" {
		t.Errorf("Environment = %q, want %q", cfg.Environment, "production")
	}
	if cfg.HTTP.Port != 9000 {
		t.Errorf("HTTP.Port = %d, want 9000", cfg.HTTP.Port)
	}
	if cfg.Auth.AccessTTL != 15*time.Minute {
		t.Errorf("Auth.AccessTTL = %v, want 15m", cfg.Auth.AccessTTL)
	}
	if cfg.Pagination.PageSize != 25 {
		t.Errorf("Pagination.PageSize = %d, want 25", cfg.Pagination.PageSize)
	}
}

func TestLoadRequiresDSN(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")

	if _, err := Load(); err == nil {
		t.Error("expected error when DB_DSN is missing")
	}
}

func TestLoadRequiresSecrets(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("DB_DSN", "host=localhost user=fleet dbname=fleet sslmode=disable")
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")

	if _, err := Load(); err == nil {
		t.Error("expected error when JWT_REFRESH_SECRET is missing")
	}
}
