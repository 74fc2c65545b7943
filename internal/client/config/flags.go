package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Options carries command-line overrides. Zero values mean "not set".
type Options struct {
	ConfigFile   string
	APIBaseURL   string
	DatabasePath string
	KeyFile      string
	HTTPTimeout  time.Duration
	LogLevel     string
}

// AddFlags registers the global flags on fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ConfigFile, "config", "c", "", "config file (JSON, or YAML by .yaml/.yml extension)")
	fs.StringVarP(&o.APIBaseURL, "api-url", "a", "", "base URL of the Pesca API (default "+DefaultAPIBaseURL+")")
	fs.StringVarP(&o.DatabasePath, "db", "d", "", "path of the local session database")
	fs.StringVarP(&o.KeyFile, "key-file", "k", "", "path of the device key protecting stored tokens")
	fs.DurationVar(&o.HTTPTimeout, "timeout", 0, "HTTP request timeout")
	fs.StringVar(&o.LogLevel, "log-level", "", "debug, info, warn or error")
}

func (o Options) apply(cfg *Config) {
	if o.APIBaseURL != "" {
		cfg.APIBaseURL = o.APIBaseURL
	}
	if o.DatabasePath != "" {
		cfg.DatabasePath = o.DatabasePath
	}
	if o.KeyFile != "" {
		cfg.KeyFile = o.KeyFile
	}
	if o.HTTPTimeout > 0 {
		cfg.HTTPTimeout = o.HTTPTimeout
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
}
