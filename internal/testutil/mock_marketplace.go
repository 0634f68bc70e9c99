// Package testutil provides testing utilities for the marketplace scraper.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"time"
)

// MockResponse defines the behavior for one mock listing page response.
type MockResponse struct {
	StatusCode int
	Body       string
	Delay      time.Duration
}

// MockMarketplace is a configurable mock marketplace listing server.
type MockMarketplace struct {
	server *httptest.Server
	mu     sync.RWMutex
	pages  map[string]MockResponse
	broken bool

	// Tracking
	RequestCount int
	LastQuery    url.Values
}

// NewMockMarketplace creates a new mock marketplace server.
func NewMockMarketplace() *MockMarketplace {
	mock := &MockMarketplace{
		pages: make(map[string]MockResponse),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		mock.mu.Lock()
		mock.RequestCount++
		mock.LastQuery = query
		broken := mock.broken
		resp, exists := mock.pages[pageKey(query.Get("page"), query.Get("model_family"))]
		mock.mu.Unlock()

		if broken {
			http.Error(w, `{"error": "service unavailable"}`, http.StatusServiceUnavailable)
			return
		}

		if !exists {
			// Pages that were never configured read as empty final pages.
			resp = NewListingResponse(nil, false)
		}

		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockMarketplace) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockMarketplace) Close() {
	m.server.Close()
}

// Reset clears all tracking counters and configured pages.
func (m *MockMarketplace) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.LastQuery = nil
	m.broken = false
	m.pages = make(map[string]MockResponse)
}

// SetPage configures the response for a (page, family) pair.
func (m *MockMarketplace) SetPage(page int, family string, resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages[pageKey(fmt.Sprintf("%d", page), family)] = resp
}

// SetBroken makes every request fail with 503 until Reset or SetBroken(false).
func (m *MockMarketplace) SetBroken(broken bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.broken = broken
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockMarketplace) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

func pageKey(page, family string) string {
	if page == "" {
		page = "1"
	}
	return page + "|" + family
}

// NewListingResponse builds a 200 listing page from named records. When
// nextPage is true the body carries a next_page_url field.
func NewListingResponse(names []string, nextPage bool) MockResponse {
	results := make([]map[string]any, 0, len(names))
	for _, name := range names {
		results = append(results, map[string]any{
			"name": name,
			"task": "chat-completion",
		})
	}

	body := map[string]any{"results": results}
	if nextPage {
		body["next_page_url"] = "https://github.com/marketplace?page=next"
	}

	data, err := json.Marshal(body)
	if err != nil {
		panic(fmt.Sprintf("marshal mock listing: %v", err))
	}

	return MockResponse{
		StatusCode: http.StatusOK,
		Body:       string(data),
	}
}

// NewListingPage builds a 200 listing page of count generated records named
// <prefix>-0 .. <prefix>-<count-1>.
func NewListingPage(count int, prefix string, nextPage bool) MockResponse {
	names := make([]string, count)
	for i := range names {
		names[i] = fmt.Sprintf("%s-%d", prefix, i)
	}
	return NewListingResponse(names, nextPage)
}

// NewServerErrorResponse creates a 500 Internal Server Error response.
func NewServerErrorResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       `{"error": "internal server error"}`,
	}
}

// NewMalformedResponse creates a 200 response whose body is not valid JSON.
func NewMalformedResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusOK,
		Body:       `{"results": [`,
	}
}
