package pageport

import "context"

// Fetcher retrieves raw HTML for a single page.
// It is used by front ends that accept URLs; the conversion core never
// performs I/O itself.
type Fetcher interface {
	// Fetch returns the body of the page at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
