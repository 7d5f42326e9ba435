// Package kv is the durable key-value store that keeps the session across
// restarts.
//
// Backends
//
//   - SQLiteRepository: default, a local sqlite file (modernc.org/sqlite)
//   - RedisRepository: go-redis, keys namespaced by a prefix
//   - MemoryRepository: process memory, for tests and throwaway runs
//   - SealedRepository: decorator encrypting values of any backend
//
// Contract
//
// Get returns (nil, nil) for an absent key. Set upserts. Delete removes any
// number of keys, is idempotent, and removes all of them or none where the
// backend supports it. Errors are wrapped with the key they concern.
package kv
