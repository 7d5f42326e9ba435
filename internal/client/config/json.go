package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/storefront/internal/flagx"
	"github.com/dmitrijs2005/storefront/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// may be strings like "10s" or integer nanoseconds. Absent keys leave the
// runtime Config untouched.
type JsonConfig struct {
	ServerBaseURL    string          `json:"server_base_url"`
	ProfileUserID    int             `json:"profile_user_id"`
	ProfileFromToken *bool           `json:"profile_from_token"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
	OnlineCheck      *timex.Duration `json:"online_check_interval"`
	StoreDriver      string          `json:"store_driver"`
	StorePath        string          `json:"store_path"`
	RedisURL         string          `json:"redis_url"`
	RedisPrefix      string          `json:"redis_prefix"`
	StorePassphrase  string          `json:"store_passphrase"`
	LogLevel         string          `json:"log_level"`
}

// parseJson overlays Config with values from the JSON file named by -c or
// -config. Without the flag nothing happens. Panics on read or unmarshal
// errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlags().JSON
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	setString(&cfg.ServerBaseURL, jc.ServerBaseURL)
	if jc.ProfileUserID != 0 {
		cfg.ProfileUserID = jc.ProfileUserID
	}
	if jc.ProfileFromToken != nil {
		cfg.ProfileFromToken = *jc.ProfileFromToken
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheck != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheck.Duration
	}
	setString(&cfg.StoreDriver, jc.StoreDriver)
	setString(&cfg.StorePath, jc.StorePath)
	setString(&cfg.RedisURL, jc.RedisURL)
	setString(&cfg.RedisPrefix, jc.RedisPrefix)
	setString(&cfg.StorePassphrase, jc.StorePassphrase)
	setString(&cfg.LogLevel, jc.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
