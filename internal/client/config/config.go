// Package config handles configuration for the dashboard client. Values are
// layered: defaults, then a .env file, then environment variables, then
// command-line flags.
package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
)

// The two endpoint values have no sane defaults; startup fails hard when
// either is missing.
var (
	ErrMissingEndpoint = errors.New("missing JUSTDOIT_ENDPOINT_URL")
	ErrMissingAPIKey   = errors.New("missing JUSTDOIT_API_KEY")
)

// Config holds runtime settings for the dashboard client.
type Config struct {
	// EndpointURL is the base URL of the remote data service.
	EndpointURL string
	// APIKey is the public service key attached to every request.
	APIKey string

	RequestTimeout         time.Duration
	SessionRefreshInterval time.Duration
	// RedirectURL is where confirmation and recovery mails point back to.
	RedirectURL string
}

func (c *Config) LoadDefaults() {
	c.RequestTimeout = 10 * time.Second
	c.SessionRefreshInterval = 30 * time.Second
	c.RedirectURL = "http://localhost:3000/auth/callback"
}

// LoadConfig builds a Config by applying defaults, a .env file (if present),
// environment variables, and finally command-line flags. It returns an error
// when the endpoint or key ends up unset.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	_ = godotenv.Load()
	parseEnv(cfg)
	parseFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate enforces the fail-fast contract on the two required values.
func (c *Config) Validate() error {
	if c.EndpointURL == "" {
		return ErrMissingEndpoint
	}
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
