package config

import (
	"log/slog"
	"os"
	"time"
)

// Store engine names accepted by the STORE environment variable.
const (
	StoreMySQL  = "mysql"
	StoreMemory = "memory"
)

type Config struct {
	Port        string
	Env         string
	Store       string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration
}

// Load reads configuration from the environment. The store engine is chosen
// here, once, and never switched at runtime.
func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		Store:       getEnv("STORE", StoreMySQL),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/todo?parseTime=true"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		JWTExpiry:   24 * time.Hour,
	}

	if cfg.Store != StoreMySQL && cfg.Store != StoreMemory {
		slog.Error("STORE must be either mysql or memory", "store", cfg.Store)
		os.Exit(1)
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}
	if cfg.Env == "production" && cfg.Store == StoreMemory {
		slog.Warn("memory store selected in production: all data is lost on restart")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
