// Package config holds the settings of the fakestore stand-in: defaults,
// then STOREFRONT_FAKESTORE_* environment variables, then flags.
package config

import (
	"flag"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/storefront/internal/flagx"
)

type Config struct {
	EndpointAddr string `env:"ADDR"`
	// SecretKey signs issued tokens (HS256). Do not use the default outside development.
	SecretKey string `env:"SECRET_KEY"`
	// TokenValidity of zero issues tokens without expiry.
	TokenValidity time.Duration `env:"TOKEN_VALIDITY"`
	LogLevel      string        `env:"LOG_LEVEL"`
}

func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8085"
	c.SecretKey = "secretKey"
	c.TokenValidity = 0
	c.LogLevel = "info"
}

func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "STOREFRONT_FAKESTORE_"}); err != nil {
		panic(err)
	}
}

// parseFlags reads -a (listen address), -s (secret key), -t (token
// validity, e.g. 1h) and -l (log level).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.EndpointAddr, "a", cfg.EndpointAddr, "address and port to run server")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	fs.DurationVar(&cfg.TokenValidity, "t", cfg.TokenValidity, "token validity, 0 for none")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
