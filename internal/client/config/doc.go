// Package config loads runtime configuration for the storefront CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed with STOREFRONT_, after loading an
//     optional .env file (-e or -env selects one explicitly).
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// # JSON schema
//
//	{
//	  "server_base_url": "https://fakestoreapi.com",
//	  "profile_user_id": 1,
//	  "profile_from_token": false,
//	  "request_timeout": "10s",
//	  "online_check_interval": "30s",
//	  "store_driver": "sqlite",
//	  "store_path": "data/session.db",
//	  "redis_url": "redis://127.0.0.1:6379/0",
//	  "redis_prefix": "storefront:",
//	  "store_passphrase": "",
//	  "log_level": "info"
//	}
//
// Malformed files or values panic at startup; Validate checks the merged
// result.
package config
