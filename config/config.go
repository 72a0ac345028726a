// Package config loads dashboard client settings from the environment.
package config

import (
	"net/http"
	"time"

	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/transport/rest"
	"github.com/caarlos0/env/v11"
	"github.com/jmgilman/go/errors"
	"github.com/sirupsen/logrus"
)

// Config holds the settings needed to reach the dashboard backend.
type Config struct {
	BaseURL   string        `env:"DASHBOARD_API_BASE_URL,required,notEmpty"`
	Token     string        `env:"DASHBOARD_API_TOKEN"`
	TenantID  string        `env:"DASHBOARD_TENANT_ID"`
	Timeout   time.Duration `env:"DASHBOARD_HTTP_TIMEOUT" envDefault:"30s"`
	RateLimit float64       `env:"DASHBOARD_RATE_LIMIT" envDefault:"0"`
	RateBurst int           `env:"DASHBOARD_RATE_BURST" envDefault:"1"`
	LogLevel  string        `env:"DASHBOARD_LOG_LEVEL" envDefault:"info"`
	UserAgent string        `env:"DASHBOARD_USER_AGENT" envDefault:"storectl"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse environment")
	}
	return cfg, cfg.Validate()
}

// LoadFrom reads the configuration from the given variables instead of the
// process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse environment")
	}
	return cfg, cfg.Validate()
}

// Validate checks values the environment parser cannot.
func (c Config) Validate() error {
	switch {
	case c.Timeout < 0:
		return invalid("DASHBOARD_HTTP_TIMEOUT", "timeout cannot be negative")
	case c.RateLimit < 0:
		return invalid("DASHBOARD_RATE_LIMIT", "rate limit cannot be negative")
	case c.RateLimit > 0 && c.RateBurst < 1:
		return invalid("DASHBOARD_RATE_BURST", "burst must be at least 1")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return invalid("DASHBOARD_LOG_LEVEL", err.Error())
	}
	return nil
}

// Level returns the configured log level, defaulting to info.
func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// TransportOptions translates the configuration into rest transport options.
// A zero timeout leaves requests unbounded; a zero rate limit disables
// client-side throttling.
func (c Config) TransportOptions(logger logrus.FieldLogger) []rest.Option {
	opts := []rest.Option{
		rest.WithHTTPClient(&http.Client{Timeout: c.Timeout}),
		rest.WithUserAgent(c.UserAgent),
	}
	if c.Token != "" {
		opts = append(opts, rest.WithBearerToken(c.Token))
	}
	if c.TenantID != "" {
		opts = append(opts, rest.WithTenant(c.TenantID))
	}
	if c.RateLimit > 0 {
		opts = append(opts, rest.WithRateLimit(c.RateLimit, c.RateBurst))
	}
	if logger != nil {
		opts = append(opts, rest.WithLogger(logger))
	}
	return opts
}

func invalid(variable, msg string) error {
	err := errors.New(errors.CodeInvalidConfig, msg)
	return errors.WithContext(err, "variable", variable)
}
