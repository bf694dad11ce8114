package config

import (
	"log/slog"
	"strings"
	"testing"
)

const testSecret = "config-test-secret-at-least-32ch!!"

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/inventory")
	t.Setenv("JWT_SECRET", testSecret)
}

func TestLoad_DefaultsApplied(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Env != "local" {
		t.Errorf("Env = %q, want local", cfg.Env)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("BcryptCost = %d, want 10", cfg.BcryptCost)
	}
	if cfg.MetricsPort != "9090" {
		t.Errorf("MetricsPort = %q, want 9090", cfg.MetricsPort)
	}
}

func TestLoad_MissingJWTSecret_Fails(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/inventory")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET is absent")
	}
}

func TestLoad_ShortJWTSecret_Fails(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/inventory")
	t.Setenv("JWT_SECRET", "too-short")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for short JWT_SECRET")
	}
	if !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("error = %v, want validation failure", err)
	}
}

func TestLoad_InvalidEnv_Fails(t *testing.T) {
	setRequired(t)
	t.Setenv("ENV", "prod") // must be "production"

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid ENV")
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
