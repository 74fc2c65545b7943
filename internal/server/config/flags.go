package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/moneyboy/internal/flagx"
)

// parseFlags overlays command-line flags onto config.
//
//	-a string    listen address (e.g. ":8080")
//	-s string    JWT HMAC secret key
//	-t duration  access token validity (e.g. "30s")
//	-r duration  refresh token validity
//	-l string    log level
//
// Only these flags are considered, so -c/--config can live alongside them.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-t", "-r", "-l"})

	fs := flag.NewFlagSet("devserver", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to listen on")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.AccessTokenValidityDuration, "t", config.AccessTokenValidityDuration, "access token validity")
	fs.DurationVar(&config.RefreshTokenValidityDuration, "r", config.RefreshTokenValidityDuration, "refresh token validity")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level (debug, info, warn, error)")

	return fs.Parse(args)
}
