// Package config loads runtime configuration for the moneyboy CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c/--config. Files ending in
//     .yaml or .yml are read as YAML, everything else as JSON.
//  3. Environment variables (MONEYBOY_API_URL, MONEYBOY_DB,
//     MONEYBOY_KEY_FILE, MONEYBOY_HTTP_TIMEOUT, MONEYBOY_LOG_LEVEL).
//  4. Command-line flags, which override earlier values.
//
// # File schema
//
// Durations use timex.Duration, so they may be strings like "15s" or
// integer nanoseconds:
//
//	{
//	  "api_url": "https://moneyboy.pesca.dev",
//	  "db_path": "/home/me/.moneyboy/moneyboy.db",
//	  "key_file": "/home/me/.moneyboy/device.key",
//	  "http_timeout": "15s",
//	  "log_level": "info"
//	}
package config
