package cache

import (
	"testing"
	"time"
)

func TestEntry_IsExpired(t *testing.T) {
	tests := []struct {
		name     string
		cachedAt time.Time
		maxAge   time.Duration
		want     bool
	}{
		{
			name:     "fresh entry",
			cachedAt: time.Now().Add(-1 * time.Minute),
			maxAge:   time.Hour,
			want:     false,
		},
		{
			name:     "expired entry",
			cachedAt: time.Now().Add(-2 * time.Hour),
			maxAge:   time.Hour,
			want:     true,
		},
		{
			name:     "just expired",
			cachedAt: time.Now().Add(-time.Hour - time.Second),
			maxAge:   time.Hour,
			want:     true,
		},
		{
			name:     "zero max age disables expiry",
			cachedAt: time.Now().Add(-24 * 365 * time.Hour),
			maxAge:   0,
			want:     false,
		},
		{
			name:     "negative max age disables expiry",
			cachedAt: time.Now().Add(-24 * time.Hour),
			maxAge:   -1,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &Entry{CachedAt: tt.cachedAt}
			if got := entry.IsExpired(tt.maxAge); got != tt.want {
				t.Errorf("IsExpired(%v) = %v, want %v", tt.maxAge, got, tt.want)
			}
		})
	}
}

func TestEntry_Age(t *testing.T) {
	entry := &Entry{CachedAt: time.Now().Add(-30 * time.Minute)}

	age := entry.Age()
	if age < 29*time.Minute || age > 31*time.Minute {
		t.Errorf("Age() = %v, want ~30m", age)
	}
}
