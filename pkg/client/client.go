// Package client fetches single marketplace listing pages with a
// cache-first read and a stale-cache fallback on network failure.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/s2005/github-models-scraper/pkg/cache"
	"github.com/s2005/github-models-scraper/pkg/config"
	"github.com/s2005/github-models-scraper/pkg/models"
)

// Prometheus metrics for marketplace requests.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketplace_requests_total",
		Help: "Total marketplace requests by outcome",
	}, []string{"status"})

	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "marketplace_request_duration_seconds",
		Help:    "Marketplace request duration in seconds",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	})
)

const (
	// pageSize is the fixed page size the marketplace API serves. A full
	// page is taken as a has-more-pages signal even without next_page_url;
	// the API does not always expose an explicit one.
	pageSize = 20

	// userAgent is the browser-like agent the listing endpoint expects.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0.0.0"
)

// listingResponse is the JSON body of one marketplace listing page.
type listingResponse struct {
	Results     []models.RawModel `json:"results"`
	NextPageURL string            `json:"next_page_url"`
}

// Client fetches marketplace pages through a cache store.
type Client struct {
	httpClient *http.Client
	store      cache.Store
	cfg        config.Config
	logger     zerolog.Logger
}

// New creates a page fetcher.
func New(cfg config.Config, store cache.Store, logger zerolog.Logger) (*Client, error) {
	if store == nil {
		return nil, fmt.Errorf("cache store is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		store:  store,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// FetchPage returns the raw records and has-more-pages flag for one page.
//
// A cache entry younger than the configured timeout is returned verbatim
// without touching the network. Otherwise the page is fetched; on success
// the result is cached (a save failure is logged, not fatal). On failure a
// cache entry of any age is served as a fallback; with no entry at all the
// fetch is exhausted and a FetchError is returned.
func (c *Client) FetchPage(ctx context.Context, page int) ([]models.RawModel, bool, error) {
	key := cache.Key{Page: page, ModelFamily: c.cfg.ModelFamily}

	if entry, err := c.store.Load(ctx, key, c.cfg.CacheTimeout); err == nil {
		c.logger.Info().
			Int("page", page).
			Dur("age", entry.Age()).
			Msg("Using cached page")
		return entry.Models, entry.HasNextPage, nil
	}

	raws, hasNext, err := c.fetchRemote(ctx, page)
	if err != nil {
		if entry, ferr := c.store.Load(ctx, key, 0); ferr == nil {
			cache.FallbackLoads.Inc()
			c.logger.Warn().
				Err(err).
				Int("page", page).
				Dur("age", entry.Age()).
				Msg("Fetch failed, using expired cache as fallback")
			return entry.Models, entry.HasNextPage, nil
		}

		c.logger.Error().Err(err).Int("page", page).Msg("Fetch failed with no cache fallback")
		return nil, false, &FetchError{
			Page:          page,
			CacheLocation: c.cacheLocation(key),
			Err:           err,
		}
	}

	entry := &cache.Entry{
		Models:      raws,
		HasNextPage: hasNext,
		CachedAt:    time.Now(),
	}
	if err := c.store.Save(ctx, key, entry); err != nil {
		// Fetched data is still usable in memory.
		c.logger.Error().Err(err).Int("page", page).Msg("Failed to save cache entry")
	}

	return raws, hasNext, nil
}

// fetchRemote performs the single HTTP GET for a page and parses the body.
func (c *Client) fetchRemote(ctx context.Context, page int) ([]models.RawModel, bool, error) {
	params := url.Values{}
	params.Set("type", c.cfg.ListingType)
	params.Set("page", strconv.Itoa(page))
	if c.cfg.ModelFamily != "" {
		params.Set("model_family", c.cfg.ModelFamily)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug().
		Int("page", page).
		Str("url", req.URL.String()).
		Msg("Fetching marketplace page")

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	requestDuration.Observe(time.Since(startTime).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues("network_error").Inc()
		return nil, false, fmt.Errorf("request page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		requestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
		return nil, false, fmt.Errorf("unexpected status %d fetching page %d", resp.StatusCode, page)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		requestsTotal.WithLabelValues("read_error").Inc()
		return nil, false, fmt.Errorf("read page %d body: %w", page, err)
	}

	var listing listingResponse
	if err := json.Unmarshal(body, &listing); err != nil {
		requestsTotal.WithLabelValues("parse_error").Inc()
		return nil, false, fmt.Errorf("parse page %d body: %w", page, err)
	}

	requestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	hasNext := listing.NextPageURL != "" || len(listing.Results) == pageSize

	c.logger.Debug().
		Int("page", page).
		Int("models", len(listing.Results)).
		Bool("has_next_page", hasNext).
		Msg("Fetched marketplace page")

	return listing.Results, hasNext, nil
}

// cacheLocation names where the fallback lookup happened for error messages.
func (c *Client) cacheLocation(key cache.Key) string {
	if fs, ok := c.store.(*cache.FileStore); ok {
		return fs.Path(key)
	}
	return key.String()
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
