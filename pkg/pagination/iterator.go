package pagination

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/s2005/github-models-scraper/pkg/models"
)

// PageFetcher is the interface the marketplace client implements for
// single-page fetching.
type PageFetcher interface {
	// FetchPage fetches one page and returns its raw records plus a
	// has-more-pages flag.
	FetchPage(ctx context.Context, page int) ([]models.RawModel, bool, error)
}

// Iterator is a lazy, finite, forward-only sequence of normalized records.
// It is not restartable and not safe for concurrent use; fetching is fully
// synchronous, one page at a time.
type Iterator struct {
	ctx     context.Context
	fetcher PageFetcher
	logger  zerolog.Logger

	page    int
	buf     []models.Model
	idx     int
	current models.Model
	total   int
	done    bool
	err     error
}

// New creates an iterator starting at page 1.
func New(ctx context.Context, fetcher PageFetcher, logger zerolog.Logger) *Iterator {
	return &Iterator{
		ctx:     ctx,
		fetcher: fetcher,
		logger:  logger,
		page:    1,
	}
}

// Next advances to the next record, fetching the next page on demand.
// It returns false when pagination is exhausted or a page fetch failed;
// records yielded before a failure remain valid.
func (it *Iterator) Next() bool {
	for {
		if it.idx < len(it.buf) {
			it.current = it.buf[it.idx]
			it.idx++
			it.total++
			return true
		}
		if it.done {
			return false
		}

		raws, hasNext, err := it.fetcher.FetchPage(it.ctx, it.page)
		if err != nil {
			it.done = true
			it.err = err
			it.logger.Error().
				Err(err).
				Int("page", it.page).
				Int("yielded", it.total).
				Msg("Pagination stopped early")
			return false
		}

		buf := make([]models.Model, len(raws))
		for i, raw := range raws {
			buf[i] = models.Normalize(raw, it.page)
		}
		it.buf, it.idx = buf, 0

		if !hasNext || len(raws) == 0 {
			it.done = true
		} else {
			it.logger.Debug().Int("page", it.page+1).Msg("Moving to next page")
		}
		it.page++
	}
}

// Model returns the record produced by the last successful Next call.
func (it *Iterator) Model() models.Model {
	return it.current
}

// Err returns the fetch failure that ended pagination early, or nil when
// pagination terminated normally.
func (it *Iterator) Err() error {
	return it.err
}

// All drains an iterator into a slice. On an early stop it returns both the
// records collected so far and the error that ended the run.
func All(ctx context.Context, fetcher PageFetcher, logger zerolog.Logger) ([]models.Model, error) {
	it := New(ctx, fetcher, logger)

	var out []models.Model
	for it.Next() {
		out = append(out, it.Model())
	}
	return out, it.Err()
}
