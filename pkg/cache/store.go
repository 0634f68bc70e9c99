package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrCacheMiss indicates no usable entry exists for the key. Missing,
	// unreadable, malformed, and expired entries all report a miss.
	ErrCacheMiss = errors.New("cache miss")
)

// Store is the page cache contract shared by the file and Redis backends.
type Store interface {
	// Load returns the entry for key if one exists and is younger than
	// maxAge. A non-positive maxAge skips the age check (fallback mode).
	// Every failure mode is collapsed into ErrCacheMiss; read problems are
	// logged, never propagated.
	Load(ctx context.Context, key Key, maxAge time.Duration) (*Entry, error)

	// Save writes or overwrites the entry for key. Backends must ensure a
	// failed write cannot corrupt a previously valid entry.
	Save(ctx context.Context, key Key, entry *Entry) error
}
