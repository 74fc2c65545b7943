package config

import (
	"fmt"
	"time"
)

const (
	EnvAPIBaseURL  = "MONEYBOY_API_URL"
	EnvDatabase    = "MONEYBOY_DB"
	EnvKeyFile     = "MONEYBOY_KEY_FILE"
	EnvHTTPTimeout = "MONEYBOY_HTTP_TIMEOUT"
	EnvLogLevel    = "MONEYBOY_LOG_LEVEL"
)

func getEnv(getenv func(string) string, name, defaultValue string) string {
	if v := getenv(name); v != "" {
		return v
	}
	return defaultValue
}

func parseEnv(cfg *Config, getenv func(string) string) error {
	if getenv == nil {
		return nil
	}

	cfg.APIBaseURL = getEnv(getenv, EnvAPIBaseURL, cfg.APIBaseURL)
	cfg.DatabasePath = getEnv(getenv, EnvDatabase, cfg.DatabasePath)
	cfg.KeyFile = getEnv(getenv, EnvKeyFile, cfg.KeyFile)
	cfg.LogLevel = getEnv(getenv, EnvLogLevel, cfg.LogLevel)

	if v := getenv(EnvHTTPTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHTTPTimeout, err)
		}
		cfg.HTTPTimeout = d
	}
	return nil
}
