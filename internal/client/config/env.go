package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/storefront/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config with STOREFRONT_* environment variables.
//
// A .env file named by -e/-env is loaded first and must exist; without the
// flag a .env in the working directory is loaded when present. Variables
// already set in the process environment are never overwritten by the file.
// Unset variables leave the field untouched. Panics on malformed input.
func parseEnv(cfg *Config) {
	if file := flagx.ConfigFileFlags().Env; file != "" {
		if err := godotenv.Load(file); err != nil {
			panic(err)
		}
	} else {
		_ = godotenv.Load()
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
