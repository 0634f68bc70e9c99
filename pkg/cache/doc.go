// Package cache persists marketplace page snapshots on durable storage.
//
// Each cached page is a JSON document holding the raw model records, the
// has-next-page flag, and the time it was written. Keys are derived
// deterministically from the page number and the optional model family
// filter, so one file (or Redis key) exists per (page, family) pair.
//
// Expiry is evaluated at read time against the entry's cached_at timestamp;
// entries are never deleted on expiry. An expired entry stays readable and
// is served when Load is called with a non-positive max age, which the page
// fetcher uses as a last-resort fallback after a failed network fetch.
//
// Any read or parse problem is treated as a cache miss and logged at warn
// level; it never surfaces as an error to the caller.
//
// # Basic Usage
//
//	store := cache.NewFileStore(".cache", logger)
//	key := cache.Key{Page: 1, ModelFamily: "DeepSeek"}
//
//	entry, err := store.Load(ctx, key, time.Hour)
//	if err == cache.ErrCacheMiss {
//		// fetch from the API, then:
//		_ = store.Save(ctx, key, &cache.Entry{
//			Models:      raws,
//			HasNextPage: hasNext,
//			CachedAt:    time.Now(),
//		})
//	}
//
// # Backends
//
// FileStore writes one pretty-printed JSON file per page under a cache
// directory (models_page1.json, models_page2_DeepSeek.json, ...). RedisStore
// keeps the same documents under models:page:* keys without a Redis TTL, so
// stale fallback reads behave identically across backends.
//
// # Metrics
//
// The package exports Prometheus counters:
//
//   - marketplace_cache_hits_total{backend} - cache hits
//   - marketplace_cache_misses_total - cache misses (including expiries)
//   - marketplace_cache_fallback_loads_total - stale entries served after a
//     failed fetch
//   - marketplace_cache_errors_total{operation} - save failures
package cache
