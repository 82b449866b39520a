// ABOUTME: Environment-driven configuration for the admin console
// ABOUTME: Loads .env when present, then reads BRIGHTBOARD_* variables

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"github.com/brightboard/admin-cli/internal/keystore"
)

// Config holds all console settings.
type Config struct {
	// APIURL is the base URL of the admin API. Required before any
	// command that talks to the backend can run.
	APIURL string `env:"BRIGHTBOARD_API_URL" validate:"omitempty,url"`

	// HTTPTimeout bounds every API call.
	HTTPTimeout time.Duration `env:"BRIGHTBOARD_HTTP_TIMEOUT, default=30s"`

	// ConfigDir overrides where the session and debug log are kept.
	ConfigDir string `env:"BRIGHTBOARD_CONFIG_DIR"`

	// LogLevel controls the debug log written during TUI runs.
	LogLevel string `env:"BRIGHTBOARD_LOG_LEVEL, default=info" validate:"omitempty,oneof=trace debug info warn error"`
}

// Load reads configuration from a .env file (if present) and the
// environment. A missing .env is not an error.
func Load(ctx context.Context) (*Config, error) {
	godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	// Variables that are set but empty bypass envconfig's defaults;
	// normalize them so the rest of the program never sees zero values.
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: invalid settings: %w", err)
	}

	if cfg.ConfigDir == "" {
		cfg.ConfigDir = keystore.DefaultDir()
	}
	return &cfg, nil
}
