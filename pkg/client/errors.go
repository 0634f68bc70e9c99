package client

import (
	"errors"
	"fmt"
)

// ErrFetchExhausted is returned when a page fetch fails and no cache entry
// of any age exists to fall back on.
var ErrFetchExhausted = errors.New("fetch failed and no cache available")

// FetchError reports an exhausted fetch with the page number and the cache
// location that was consulted for a fallback.
type FetchError struct {
	Page          int
	CacheLocation string
	Err           error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch page %d and no cache available at %s: %v",
		e.Page, e.CacheLocation, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches ErrFetchExhausted so callers can test with errors.Is.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchExhausted
}
