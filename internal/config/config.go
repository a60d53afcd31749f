package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

var (
	ErrInvalidPort        = errors.New("CLOCK_HTTP_PORT must be between 1 and 65535")
	ErrEmptyServiceName   = errors.New("CLOCK_SERVICE_NAME must not be empty")
	ErrIncompleteTLSPair  = errors.New("CLOCK_HTTP_TLS_CERT_FILE and CLOCK_HTTP_TLS_KEY_FILE must be set together")
	ErrNoAllowedOrigins   = errors.New("CLOCK_CORS_ALLOWED_ORIGINS must list at least one origin")
	ErrNegativeCORSMaxAge = errors.New("CLOCK_CORS_MAX_AGE must not be negative")
)

// Config aggregates all runtime settings.
type Config struct {
	App     AppConfig     `envPrefix:"CLOCK_"`
	HTTP    HTTPConfig    `envPrefix:"CLOCK_HTTP_"`
	CORS    CORSConfig    `envPrefix:"CLOCK_CORS_"`
	Metrics MetricsConfig `envPrefix:"CLOCK_METRICS_"`
}

type AppConfig struct {
	Environment string `env:"ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"backend-go"`
}

type HTTPConfig struct {
	Host              string        `env:"HOST" envDefault:"0.0.0.0"`
	Port              int           `env:"PORT" envDefault:"3000"`
	ReadTimeout       time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT" envDefault:"120s"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"25s"`
	TLSCertFile       string        `env:"TLS_CERT_FILE"`
	TLSKeyFile        string        `env:"TLS_KEY_FILE"`
}

// Addr returns the host:port pair the server listens on.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type CORSConfig struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	MaxAge         int      `env:"MAX_AGE" envDefault:"300"`
}

type MetricsConfig struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`
}

// Load parses environment variables into Config and performs validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return ErrInvalidPort
	}
	if strings.TrimSpace(c.App.ServiceName) == "" {
		return ErrEmptyServiceName
	}
	if (c.HTTP.TLSCertFile == "") != (c.HTTP.TLSKeyFile == "") {
		return ErrIncompleteTLSPair
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		return ErrNoAllowedOrigins
	}
	if c.CORS.MaxAge < 0 {
		return ErrNegativeCORSMaxAge
	}
	return nil
}
