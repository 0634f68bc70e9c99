// Package config holds the immutable fetch configuration for one run.
package config

import (
	"fmt"
	"time"
)

const (
	// DefaultBaseURL is the marketplace listing endpoint.
	DefaultBaseURL = "https://github.com/marketplace"

	// DefaultCacheTimeout is the default page cache expiry.
	DefaultCacheTimeout = time.Hour
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config is constructed once per invocation and never mutated.
type Config struct {
	// BaseURL is the marketplace listing endpoint.
	BaseURL string

	// ModelFamily filters the listing by family (e.g. "DeepSeek").
	// Empty means no filter.
	ModelFamily string

	// ListingType is the fixed listing type query parameter.
	ListingType string

	// CacheDir is where the file backend keeps page snapshots.
	CacheDir string

	// CacheTimeout is how long a cached page stays fresh.
	CacheTimeout time.Duration

	// CacheBackend selects the page cache backend (file or redis).
	CacheBackend string

	// RedisAddr is the Redis address for the redis backend.
	RedisAddr string
}

// DefaultConfig returns a configuration matching the CLI defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:      DefaultBaseURL,
		ListingType:  "models",
		CacheDir:     ".cache",
		CacheTimeout: DefaultCacheTimeout,
		CacheBackend: BackendFile,
		RedisAddr:    "localhost:6379",
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}

	if c.ListingType == "" {
		return fmt.Errorf("listing type is required")
	}

	if c.CacheTimeout < 0 {
		return fmt.Errorf("cache timeout must not be negative, got %s", c.CacheTimeout)
	}

	switch c.CacheBackend {
	case BackendFile:
		if c.CacheDir == "" {
			return fmt.Errorf("cache directory is required for the file backend")
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("redis address is required for the redis backend")
		}
	default:
		return fmt.Errorf("cache backend must be %q or %q, got: %s", BackendFile, BackendRedis, c.CacheBackend)
	}

	return nil
}
