// Package metrics provides the Prometheus registry reference for the
// marketplace scraper. All metrics are defined in their respective packages
// (client, cache) to maintain modularity and avoid circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the scraper.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Cache Metrics (pkg/cache):
//   - marketplace_cache_hits_total{backend} (Counter): Cache hits by backend (file, redis)
//   - marketplace_cache_misses_total (Counter): Cache misses, including expired entries
//   - marketplace_cache_fallback_loads_total (Counter): Stale entries served after a failed fetch
//   - marketplace_cache_errors_total{operation} (Counter): Cache operation errors
//
// Request Metrics (pkg/client):
//   - marketplace_requests_total{status} (Counter): Requests by outcome (HTTP status,
//     network_error, read_error, parse_error)
//   - marketplace_request_duration_seconds (Histogram): Listing request duration
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(marketplace_cache_hits_total[5m])) /
//   (sum(rate(marketplace_cache_hits_total[5m])) + sum(rate(marketplace_cache_misses_total[5m])))
//
//   # Fallback Rate (staleness pressure)
//   rate(marketplace_cache_fallback_loads_total[5m])
//
//   # Request Error Rate
//   sum(rate(marketplace_requests_total{status!~"2.."}[5m]))
