package config

import (
	"fmt"
	"time"
)

// Store drivers.
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "STOREFRONT_"

// Config holds runtime settings for the storefront CLI.
type Config struct {
	// ServerBaseURL is the root of the upstream auth/profile API.
	ServerBaseURL string `env:"SERVER_BASE_URL"`
	// ProfileUserID is the profile fetched after login.
	ProfileUserID int `env:"PROFILE_USER_ID"`
	// ProfileFromToken fetches the profile named by the token subject instead.
	ProfileFromToken bool          `env:"PROFILE_FROM_TOKEN"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT"`
	// OnlineCheckInterval is how often the REPL probes the upstream; 0 disables.
	OnlineCheckInterval time.Duration `env:"ONLINE_CHECK_INTERVAL"`

	StoreDriver string `env:"STORE_DRIVER"`
	// StorePath is the sqlite database file.
	StorePath   string `env:"STORE_PATH"`
	RedisURL    string `env:"REDIS_URL"`
	RedisPrefix string `env:"REDIS_PREFIX"`
	// StorePassphrase seals stored values when set.
	StorePassphrase string `env:"STORE_PASSPHRASE"`

	LogLevel string `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "https://fakestoreapi.com"
	c.ProfileUserID = 1
	c.ProfileFromToken = false
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 30 * time.Second
	c.StoreDriver = StoreSQLite
	c.StorePath = "data/session.db"
	c.RedisURL = "redis://127.0.0.1:6379/0"
	c.RedisPrefix = "storefront:"
	c.StorePassphrase = ""
	c.LogLevel = "info"
}

// Validate reports the first setting the app cannot run with.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreSQLite:
		if c.StorePath == "" {
			return fmt.Errorf("store path is required for the %s driver", StoreSQLite)
		}
	case StoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("redis url is required for the %s driver", StoreRedis)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}
	if c.ServerBaseURL == "" {
		return fmt.Errorf("server base url is required")
	}
	if c.ProfileUserID <= 0 {
		return fmt.Errorf("profile user id must be positive, got %d", c.ProfileUserID)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative, got %s", c.RequestTimeout)
	}
	if c.OnlineCheckInterval < 0 {
		return fmt.Errorf("online check interval must not be negative, got %s", c.OnlineCheckInterval)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (and an optional .env file), a JSON file and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
