package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "STORE", "DATABASE_DSN", "JWT_SECRET"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.Store != StoreMySQL {
		t.Errorf("Store = %q, want %q", cfg.Store, StoreMySQL)
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v, want 24h", cfg.JWTExpiry)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE", StoreMemory)
	t.Setenv("JWT_SECRET", "env-secret")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.Store != StoreMemory {
		t.Errorf("Store = %q, want %q", cfg.Store, StoreMemory)
	}
	if cfg.JWTSecret != "env-secret" {
		t.Errorf("JWTSecret = %q, want env-secret", cfg.JWTSecret)
	}
}

func TestGetEnvFallback(t *testing.T) {
	if got := getEnv("DOES_NOT_EXIST_12345", "fallback"); got != "fallback" {
		t.Errorf("getEnv() = %q, want fallback", got)
	}

	t.Setenv("SOME_SET_KEY", "value")
	if got := getEnv("SOME_SET_KEY", "fallback"); got != "value" {
		t.Errorf("getEnv() = %q, want value", got)
	}
}
