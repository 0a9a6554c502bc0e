package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration for the landing site.
type Config struct {
	Addr       string `env:"APP_ADDR" envDefault:":8080" validate:"required"`
	Env        string `env:"APP_ENV" envDefault:"development" validate:"oneof=development production test"`
	AppBaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080" validate:"required,url"`

	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	SessionSecret string `env:"SESSION_SECRET" envDefault:"kanbananza-development-secret" validate:"required,min=16"`

	RateLimitRPS    float64       `env:"RATE_LIMIT_RPS" envDefault:"20" validate:"gt=0"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`

	SentryDSN string `env:"SENTRY_DSN" validate:"omitempty,url"`
}

// IsProduction reports whether the site runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// New loads configuration from a .env file, if present, and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv parses and validates configuration from the process environment.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its validate tag.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: %s failed %q validation", ErrInvalidConfig, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
