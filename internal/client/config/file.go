package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/moneyboy/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for decoding config files.
// Empty fields leave the current value untouched.
type FileConfig struct {
	APIBaseURL   string         `json:"api_url" yaml:"api_url"`
	DatabasePath string         `json:"db_path" yaml:"db_path"`
	KeyFile      string         `json:"key_file" yaml:"key_file"`
	HTTPTimeout  timex.Duration `json:"http_timeout" yaml:"http_timeout"`
	LogLevel     string         `json:"log_level" yaml:"log_level"`
}

func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.overlay(cfg)
	return nil
}

func (fc FileConfig) overlay(cfg *Config) {
	if fc.APIBaseURL != "" {
		cfg.APIBaseURL = fc.APIBaseURL
	}
	if fc.DatabasePath != "" {
		cfg.DatabasePath = fc.DatabasePath
	}
	if fc.KeyFile != "" {
		cfg.KeyFile = fc.KeyFile
	}
	if fc.HTTPTimeout.Duration > 0 {
		cfg.HTTPTimeout = fc.HTTPTimeout.Duration
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
