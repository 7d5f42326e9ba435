package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"fakestore"}, args...)
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8085", c.EndpointAddr)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Zero(t, c.TokenValidity)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_EnvThenFlags(t *testing.T) {
	t.Setenv("STOREFRONT_FAKESTORE_ADDR", ":9999")
	t.Setenv("STOREFRONT_FAKESTORE_SECRET_KEY", "from-env")
	withArgs(t, "-a", "127.0.0.1:0", "-t", "1h")

	cfg := LoadConfig()

	want := Config{EndpointAddr: "127.0.0.1:0", SecretKey: "from-env", TokenValidity: time.Hour, LogLevel: "info"}
	assert.Empty(t, cmp.Diff(want, *cfg))
}

func TestParseFlags_BadDurationPanics(t *testing.T) {
	withArgs(t, "-t", "forever")

	var c Config
	c.LoadDefaults()
	require.Panics(t, func() { parseFlags(&c) })
}
