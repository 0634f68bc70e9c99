package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks cache hits by backend (file, redis)
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_cache_hits_total",
			Help: "Total number of marketplace page cache hits",
		},
		[]string{"backend"}, // "file", "redis"
	)

	// CacheMisses tracks cache misses, including expired entries
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "marketplace_cache_misses_total",
			Help: "Total number of marketplace page cache misses",
		},
	)

	// FallbackLoads tracks stale entries served after a failed fetch
	FallbackLoads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "marketplace_cache_fallback_loads_total",
			Help: "Total number of stale cache entries served as fetch fallback",
		},
	)

	// CacheErrors tracks cache operation errors
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_cache_errors_total",
			Help: "Total number of cache operation errors",
		},
		[]string{"operation"}, // "save"
	)
)
