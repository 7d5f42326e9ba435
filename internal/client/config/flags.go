package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/storefront/internal/flagx"
)

var knownFlags = []string{"-a", "-u", "-profile-from-token", "-t", "-i", "-s", "-p", "-r", "-l"}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string              base URL of the upstream API
//	-u int                 profile user id fetched after login
//	-profile-from-token    fetch the profile named by the token subject
//	-t duration            per-request timeout, e.g. 5s
//	-i duration            online check interval, 0 disables
//	-s string              store driver: sqlite, redis or memory
//	-p string              sqlite store file
//	-r string              redis URL
//	-l string              log level: debug, info, warn or error
//
// os.Args is filtered with flagx.FilterArgs so flags owned by other
// stages do not interfere. Panics on malformed values.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the upstream API")
	fs.IntVar(&cfg.ProfileUserID, "u", cfg.ProfileUserID, "profile user id fetched after login")
	fs.BoolVar(&cfg.ProfileFromToken, "profile-from-token", cfg.ProfileFromToken, "fetch the profile named by the token subject")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout")
	fs.DurationVar(&cfg.OnlineCheckInterval, "i", cfg.OnlineCheckInterval, "online check interval")
	fs.StringVar(&cfg.StoreDriver, "s", cfg.StoreDriver, "store driver: sqlite, redis or memory")
	fs.StringVar(&cfg.StorePath, "p", cfg.StorePath, "sqlite store file")
	fs.StringVar(&cfg.RedisURL, "r", cfg.RedisURL, "redis URL")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
