// ABOUTME: Tests for environment-driven configuration loading

package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BRIGHTBOARD_API_URL", "")
	t.Setenv("BRIGHTBOARD_HTTP_TIMEOUT", "")
	t.Setenv("BRIGHTBOARD_CONFIG_DIR", "")
	t.Setenv("BRIGHTBOARD_LOG_LEVEL", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", cfg.HTTPTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %q", cfg.LogLevel)
	}
	if cfg.ConfigDir == "" {
		t.Error("expected config dir fallback")
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("BRIGHTBOARD_API_URL", "https://api.example.com")
	t.Setenv("BRIGHTBOARD_HTTP_TIMEOUT", "5s")
	t.Setenv("BRIGHTBOARD_CONFIG_DIR", "/tmp/bb")
	t.Setenv("BRIGHTBOARD_LOG_LEVEL", "debug")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIURL != "https://api.example.com" {
		t.Errorf("unexpected API URL %q", cfg.APIURL)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("unexpected timeout %v", cfg.HTTPTimeout)
	}
	if cfg.ConfigDir != "/tmp/bb" {
		t.Errorf("unexpected config dir %q", cfg.ConfigDir)
	}
}

func TestLoad_ZeroTimeoutFallsBack(t *testing.T) {
	t.Setenv("BRIGHTBOARD_API_URL", "")
	t.Setenv("BRIGHTBOARD_HTTP_TIMEOUT", "0s")
	t.Setenv("BRIGHTBOARD_LOG_LEVEL", "")
	t.Setenv("BRIGHTBOARD_CONFIG_DIR", "/tmp/bb")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("expected zero timeout to fall back to 30s, got %v", cfg.HTTPTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected empty log level to fall back to info, got %q", cfg.LogLevel)
	}
}

func TestLoad_InvalidURL(t *testing.T) {
	t.Setenv("BRIGHTBOARD_API_URL", "not a url")
	t.Setenv("BRIGHTBOARD_LOG_LEVEL", "")

	if _, err := Load(context.Background()); err == nil {
		t.Fatal("expected validation error for malformed URL")
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("BRIGHTBOARD_API_URL", "")
	t.Setenv("BRIGHTBOARD_LOG_LEVEL", "verbose")

	if _, err := Load(context.Background()); err == nil {
		t.Fatal("expected validation error for unknown log level")
	}
}
