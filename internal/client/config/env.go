package config

import (
	"os"
	"time"
)

// parseEnv overlays values from the environment.
//
// Recognized variables:
//
//	JUSTDOIT_ENDPOINT_URL     base URL of the remote data service
//	JUSTDOIT_API_KEY          public service key
//	JUSTDOIT_REDIRECT_URL     confirmation/recovery redirect target
//	JUSTDOIT_REQUEST_TIMEOUT  per-request timeout, Go duration syntax
func parseEnv(cfg *Config) {
	if v := os.Getenv("JUSTDOIT_ENDPOINT_URL"); v != "" {
		cfg.EndpointURL = v
	}
	if v := os.Getenv("JUSTDOIT_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("JUSTDOIT_REDIRECT_URL"); v != "" {
		cfg.RedirectURL = v
	}
	if v := os.Getenv("JUSTDOIT_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
