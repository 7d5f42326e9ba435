package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"testbin"}, args...)
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "https://fakestoreapi.com", c.ServerBaseURL)
	assert.Equal(t, 1, c.ProfileUserID)
	assert.False(t, c.ProfileFromToken)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 30*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, StoreSQLite, c.StoreDriver)
	assert.Equal(t, "data/session.db", c.StorePath)
	assert.Equal(t, "storefront:", c.RedisPrefix)
	assert.Empty(t, c.StorePassphrase)
	assert.Equal(t, "info", c.LogLevel)
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"memory needs nothing", func(c *Config) { c.StoreDriver = StoreMemory; c.StorePath = "" }, ""},
		{"redis", func(c *Config) { c.StoreDriver = StoreRedis }, ""},
		{"redis without url", func(c *Config) { c.StoreDriver = StoreRedis; c.RedisURL = "" }, "redis url"},
		{"sqlite without path", func(c *Config) { c.StorePath = "" }, "store path"},
		{"unknown driver", func(c *Config) { c.StoreDriver = "etcd" }, "unknown store driver"},
		{"no base url", func(c *Config) { c.ServerBaseURL = "" }, "base url"},
		{"zero profile id", func(c *Config) { c.ProfileUserID = 0 }, "profile user id"},
		{"negative timeout", func(c *Config) { c.RequestTimeout = -time.Second }, "timeout"},
		{"watcher disabled", func(c *Config) { c.OnlineCheckInterval = 0 }, ""},
		{"negative interval", func(c *Config) { c.OnlineCheckInterval = -time.Second }, "online check"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_UsesDefaultsWithoutSources(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Empty(t, cmp.Diff(defaults(), *cfg))
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"server_base_url": "http://from-json",
		"store_driver":    "memory",
		"log_level":       "warn",
	})

	t.Setenv("STOREFRONT_SERVER_BASE_URL", "http://from-env")
	t.Setenv("STOREFRONT_LOG_LEVEL", "debug")
	t.Setenv("STOREFRONT_PROFILE_USER_ID", "3")
	withArgs(t, "-c", path, "-a", "http://from-flag")

	cfg := LoadConfig()

	want := defaults()
	want.ServerBaseURL = "http://from-flag"
	want.StoreDriver = StoreMemory
	want.LogLevel = "warn"
	want.ProfileUserID = 3
	assert.Empty(t, cmp.Diff(want, *cfg))
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("STOREFRONT_STORE_PASSPHRASE=s3cret\nSTOREFRONT_REQUEST_TIMEOUT=2s\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("STOREFRONT_STORE_PASSPHRASE")
		_ = os.Unsetenv("STOREFRONT_REQUEST_TIMEOUT")
	})
	withArgs(t, "-e", path)

	cfg := LoadConfig()

	assert.Equal(t, "s3cret", cfg.StorePassphrase)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
}
