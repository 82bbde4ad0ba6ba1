package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/justdoit/internal/flagx"
	"github.com/dmitrijs2005/justdoit/internal/timex"
)

// JsonConfig is an intermediate DTO for reading JSON configuration files.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "1h" and integer nanoseconds.
type JsonConfig struct {
	BindAddr              string         `json:"bind_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	ServiceKey            string         `json:"service_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	ConfirmationRequired  bool           `json:"confirmation_required"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config flags; when
// neither is set, no file is loaded. An unreadable or invalid file panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.BindAddr = c.BindAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.ServiceKey = c.ServiceKey
	config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	config.ConfirmationRequired = c.ConfirmationRequired
}
