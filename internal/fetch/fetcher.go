// Package fetch handles retrieval of pages over HTTP.
package fetch

import (
	"context"
	"strings"
	"time"
)

// Page represents one fetched page.
type Page struct {
	URL         string
	HTML        string
	StatusCode  int
	ContentType string
	FetchedAt   time.Time
}

// IsHTML reports whether the response declared an HTML content type.
func (p Page) IsHTML() bool {
	return strings.Contains(p.ContentType, "text/html")
}

// Options holds fetcher configuration.
type Options struct {
	UserAgent string
	Timeout   time.Duration
	Headers   map[string]string
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		UserAgent: "docsnap/1.0 (+https://github.com/docsnap/docsnap)",
		Timeout:   20 * time.Second,
	}
}

// Fetcher abstracts page retrieval so the crawl engine can be tested
// against fakes.
type Fetcher interface {
	// Fetch retrieves page content from a URL.
	Fetch(ctx context.Context, url string) (Page, error)

	// Close releases any resources.
	Close() error
}
