package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	valid := DefaultConfig()

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
		errorMsg    string
	}{
		{
			name:        "default config",
			mutate:      func(c *Config) {},
			expectError: false,
		},
		{
			name:        "with family filter",
			mutate:      func(c *Config) { c.ModelFamily = "DeepSeek" },
			expectError: false,
		},
		{
			name:        "empty base URL",
			mutate:      func(c *Config) { c.BaseURL = "" },
			expectError: true,
			errorMsg:    "base URL is required",
		},
		{
			name:        "empty listing type",
			mutate:      func(c *Config) { c.ListingType = "" },
			expectError: true,
			errorMsg:    "listing type is required",
		},
		{
			name:        "negative cache timeout",
			mutate:      func(c *Config) { c.CacheTimeout = -time.Second },
			expectError: true,
			errorMsg:    "cache timeout",
		},
		{
			name:        "zero cache timeout is allowed",
			mutate:      func(c *Config) { c.CacheTimeout = 0 },
			expectError: false,
		},
		{
			name:        "unknown backend",
			mutate:      func(c *Config) { c.CacheBackend = "memcached" },
			expectError: true,
			errorMsg:    "cache backend",
		},
		{
			name: "file backend without cache dir",
			mutate: func(c *Config) {
				c.CacheBackend = BackendFile
				c.CacheDir = ""
			},
			expectError: true,
			errorMsg:    "cache directory",
		},
		{
			name: "redis backend without address",
			mutate: func(c *Config) {
				c.CacheBackend = BackendRedis
				c.RedisAddr = ""
			},
			expectError: true,
			errorMsg:    "redis address",
		},
		{
			name: "redis backend with address",
			mutate: func(c *Config) {
				c.CacheBackend = BackendRedis
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.expectError {
				if err == nil {
					t.Fatal("Validate() = nil, want error")
				}
				if !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("Validate() error = %q, want it to contain %q", err, tt.errorMsg)
				}
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
