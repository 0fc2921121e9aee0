package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Remote API
	APIBaseURL  string        `env:"FINTRACK_API_URL"     envDefault:"http://localhost:5000/api"`
	HTTPTimeout time.Duration `env:"FINTRACK_API_TIMEOUT" envDefault:"15s"`

	// Credential persistence (the well-known access token location)
	TokenPath string `env:"FINTRACK_TOKEN_PATH" envDefault:""`

	// Reports
	TrendMonths int `env:"FINTRACK_TREND_MONTHS" envDefault:"6"`
	RecentLimit int `env:"FINTRACK_RECENT_LIMIT" envDefault:"10"`

	// Logging
	LogLevel  string `env:"FINTRACK_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"FINTRACK_LOG_FORMAT" envDefault:"console"`

	// Dev server
	HTTPPort            string        `env:"FINTRACK_HTTP_PORT"        envDefault:"5000"`
	HTTPReadTimeout     time.Duration `env:"FINTRACK_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"FINTRACK_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPShutdownTimeout time.Duration `env:"FINTRACK_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Dev server tokens
	JWTSecret       string        `env:"FINTRACK_JWT_SECRET"  envDefault:"fintrack-dev-secret"`
	AccessTokenTTL  time.Duration `env:"FINTRACK_ACCESS_TTL"  envDefault:"15m"`
	RefreshTokenTTL time.Duration `env:"FINTRACK_REFRESH_TTL" envDefault:"168h"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
