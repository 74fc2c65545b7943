package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultAPIBaseURL  = "https://moneyboy.pesca.dev"
	DefaultHTTPTimeout = 15 * time.Second
	DefaultLogLevel    = "warn"
)

// Config holds runtime settings for the moneyboy CLI.
type Config struct {
	APIBaseURL   string
	DatabasePath string
	KeyFile      string
	HTTPTimeout  time.Duration
	LogLevel     string
}

// dataDir is ~/.moneyboy, or ./.moneyboy when the home directory is unknown.
func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".moneyboy"
	}
	return filepath.Join(home, ".moneyboy")
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	dir := dataDir()
	c.APIBaseURL = DefaultAPIBaseURL
	c.DatabasePath = filepath.Join(dir, "moneyboy.db")
	c.KeyFile = filepath.Join(dir, "device.key")
	c.HTTPTimeout = DefaultHTTPTimeout
	c.LogLevel = DefaultLogLevel
}

// LoadConfig builds a Config from defaults, the optional file named in
// o.ConfigFile, the environment, and finally the explicitly set options.
func LoadConfig(o Options, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if o.ConfigFile != "" {
		if err := parseFile(cfg, o.ConfigFile); err != nil {
			return nil, err
		}
	}

	if err := parseEnv(cfg, getenv); err != nil {
		return nil, err
	}

	o.apply(cfg)
	return cfg, nil
}
