package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// AppConfig holds the environment-driven settings for the server.
type AppConfig struct {
	Port        string   `envconfig:"PORT" default:"5000"`
	Env         string   `envconfig:"ENV" default:"development"`
	DatabaseURL string   `envconfig:"DATABASE_URL"`
	CorsOrigins []string `envconfig:"CORS_ORIGINS"`
}

// LoadEnv loads variables from a .env file if one exists. Missing files are
// fine; deployed environments inject real env vars instead.
func LoadEnv() {
	_ = godotenv.Load()
}

// Load decodes the process environment into an AppConfig.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}

// IsProduction reports whether the server runs with production cookie and
// CORS behavior.
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}
