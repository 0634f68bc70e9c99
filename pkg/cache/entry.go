package cache

import (
	"time"

	"github.com/s2005/github-models-scraper/pkg/models"
)

// Entry is one cached page snapshot: the raw records of a single marketplace
// page plus the pagination flag and the time the snapshot was written.
type Entry struct {
	// Models are the raw records exactly as the API returned them.
	Models []models.RawModel `json:"models"`

	// HasNextPage is the has-more-pages flag computed at fetch time.
	HasNextPage bool `json:"has_next_page"`

	// CachedAt is when this snapshot was written (RFC 3339 on disk).
	CachedAt time.Time `json:"cached_at"`
}

// Age returns how old the entry is. Age is computed at read time; an entry
// is never stamped with its expiry.
func (e *Entry) Age() time.Duration {
	return time.Since(e.CachedAt)
}

// IsExpired reports whether the entry is at least maxAge old. A non-positive
// maxAge disables expiry entirely; this is the fallback read mode used after
// a failed network fetch.
func (e *Entry) IsExpired(maxAge time.Duration) bool {
	if maxAge <= 0 {
		return false
	}
	return e.Age() >= maxAge
}
