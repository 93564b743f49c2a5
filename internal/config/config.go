// Package config provides runtime configuration for the admin CLI,
// loaded from environment variables with sensible defaults. Command-line
// flags may override individual values after loading.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Options holds the configuration values for the application.
type Options struct {
	// BaseURL is the platform API origin every resource path is appended to.
	BaseURL string `env:"FITADMIN_API_URL, default=https://api.fitlab.io"`

	// TokenDir overrides where the bearer credential is persisted.
	// Empty means the per-user config directory.
	TokenDir string `env:"FITADMIN_TOKEN_DIR"`

	// LogLevel is the minimum log level: debug, info, warn, error.
	LogLevel string `env:"FITADMIN_LOG_LEVEL, default=info"`

	// Timeout bounds each HTTP request.
	Timeout time.Duration `env:"FITADMIN_HTTP_TIMEOUT, default=30s"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (*Options, error) {
	var opts Options
	if err := envconfig.Process(ctx, &opts); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &opts, nil
}
