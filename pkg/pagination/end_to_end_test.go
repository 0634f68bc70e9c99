package pagination_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/s2005/github-models-scraper/internal/testutil"
	"github.com/s2005/github-models-scraper/pkg/cache"
	"github.com/s2005/github-models-scraper/pkg/client"
	"github.com/s2005/github-models-scraper/pkg/config"
	"github.com/s2005/github-models-scraper/pkg/pagination"
)

func newScraper(t *testing.T, mock *testutil.MockMarketplace, family string) (*client.Client, *cache.FileStore) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.BaseURL = mock.URL()
	cfg.ModelFamily = family
	cfg.CacheDir = t.TempDir()
	cfg.CacheTimeout = time.Hour

	store := cache.NewFileStore(cfg.CacheDir, zerolog.Nop())
	c, err := client.New(cfg, store, zerolog.Nop())
	if err != nil {
		t.Fatalf("client.New failed: %v", err)
	}
	return c, store
}

// Scenario from the field: family filter DeepSeek, a full first page with an
// explicit next_page_url, then a short final page.
func TestEndToEnd_TwoPageRun(t *testing.T) {
	mock := testutil.NewMockMarketplace()
	defer mock.Close()
	mock.SetPage(1, "DeepSeek", testutil.NewListingPage(20, "deepseek-a", true))
	mock.SetPage(2, "DeepSeek", testutil.NewListingPage(5, "deepseek-b", false))

	c, store := newScraper(t, mock, "DeepSeek")
	ctx := context.Background()

	got, err := pagination.All(ctx, c, zerolog.Nop())
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}

	if len(got) != 25 {
		t.Fatalf("record count = %d, want 25", len(got))
	}
	for i, m := range got {
		wantPage := 1
		if i >= 20 {
			wantPage = 2
		}
		if m.Page != wantPage {
			t.Errorf("record %d page = %d, want %d", i, m.Page, wantPage)
		}
	}

	if mock.GetRequestCount() != 2 {
		t.Errorf("request count = %d, want 2", mock.GetRequestCount())
	}

	// One cache file per fetched page.
	for page := 1; page <= 2; page++ {
		path := store.Path(cache.Key{Page: page, ModelFamily: "DeepSeek"})
		if _, err := os.Stat(path); err != nil {
			t.Errorf("cache file for page %d not written: %v", page, err)
		}
	}
}

func TestEndToEnd_WarmCacheRunIsIdempotent(t *testing.T) {
	mock := testutil.NewMockMarketplace()
	defer mock.Close()
	mock.SetPage(1, "", testutil.NewListingPage(20, "model-a", true))
	mock.SetPage(2, "", testutil.NewListingPage(3, "model-b", false))

	c, _ := newScraper(t, mock, "")
	ctx := context.Background()

	first, err := pagination.All(ctx, c, zerolog.Nop())
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	requestsAfterFirst := mock.GetRequestCount()

	second, err := pagination.All(ctx, c, zerolog.Nop())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if mock.GetRequestCount() != requestsAfterFirst {
		t.Errorf("second run hit the network: %d -> %d requests",
			requestsAfterFirst, mock.GetRequestCount())
	}

	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal first run: %v", err)
	}
	secondJSON, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal second run: %v", err)
	}
	if string(firstJSON) != string(secondJSON) {
		t.Error("warm cache runs produced different record sequences")
	}
}

func TestEndToEnd_PartialRunOnOutage(t *testing.T) {
	mock := testutil.NewMockMarketplace()
	defer mock.Close()
	mock.SetPage(1, "", testutil.NewListingPage(20, "model-a", true))
	mock.SetPage(2, "", testutil.NewServerErrorResponse())

	c, _ := newScraper(t, mock, "")
	ctx := context.Background()

	// Prime page 1 into the cache; page 2 never succeeds and is never cached.
	warm, err := pagination.All(ctx, c, zerolog.Nop())
	if err == nil {
		t.Fatal("expected page 2 to be exhausted on the warm-up run")
	}
	if len(warm) != 20 {
		t.Fatalf("warm run yielded %d records, want the 20 from page 1", len(warm))
	}

	mock.SetBroken(true)

	got, err := pagination.All(ctx, c, zerolog.Nop())
	if err == nil {
		t.Fatal("expected the run to report the exhausted page")
	}
	if len(got) != 20 {
		t.Errorf("record count = %d, want the 20 cached page 1 records preserved", len(got))
	}
}
