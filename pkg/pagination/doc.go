// Package pagination drives sequential fetching of marketplace listing pages.
//
// The marketplace API exposes no total page count; each page only signals
// whether more pages follow (next_page_url, or a full page of 20 records).
// The iterator walks pages starting at 1, normalizes each raw record, and
// yields records lazily: a page is fetched only when its first record is
// demanded.
//
// Example usage:
//
//	it := pagination.New(ctx, fetcher, logger)
//	for it.Next() {
//		m := it.Model()
//		// process m before later pages are fetched
//	}
//	if err := it.Err(); err != nil {
//		// pagination stopped early; yielded records are still valid
//	}
//
// The iterator:
//   - Stops when a page reports no next page or returns no records
//   - Stops on an exhausted fetch, preserving everything already yielded
//   - Is forward-only and non-restartable
//   - Enforces no maximum page bound
package pagination
