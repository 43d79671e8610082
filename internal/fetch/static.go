package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"
)

// Static fetches pages with a single plain HTTP GET per URL. There is no
// JavaScript rendering; what the server returns is what gets parsed.
type Static struct {
	opts Options
}

// NewStatic creates a static fetcher.
func NewStatic(opts Options) *Static {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultOptions().UserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultOptions().Timeout
	}
	return &Static{opts: opts}
}

// Fetch retrieves page content using Colly.
func (f *Static) Fetch(ctx context.Context, targetURL string) (Page, error) {
	result := Page{
		URL:       targetURL,
		FetchedAt: time.Now(),
	}

	// Fresh collector per request; revisit bookkeeping lives in the frontier.
	c := colly.NewCollector(
		colly.UserAgent(f.opts.UserAgent),
		colly.IgnoreRobotsTxt(),
	)
	c.SetRequestTimeout(f.opts.Timeout)

	if len(f.opts.Headers) > 0 {
		c.OnRequest(func(r *colly.Request) {
			for k, v := range f.opts.Headers {
				r.Headers.Set(k, v)
			}
		})
	}

	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		result.StatusCode = r.StatusCode
		result.ContentType = r.Headers.Get("Content-Type")
		result.HTML = string(r.Body)
	})

	c.OnError(func(r *colly.Response, err error) {
		// Status errors still carry a response; keep its metadata so
		// callers can tell an HTML 404 from a non-HTML one.
		if r != nil {
			result.StatusCode = r.StatusCode
			if r.Headers != nil {
				result.ContentType = r.Headers.Get("Content-Type")
			}
		}
		fetchErr = fmt.Errorf("fetch error: %w", err)
	})

	if err := c.Visit(targetURL); err != nil {
		if fetchErr != nil {
			return result, fetchErr
		}
		return result, fmt.Errorf("failed to visit URL: %w", err)
	}

	if fetchErr != nil {
		return result, fetchErr
	}

	return result, nil
}

// Close releases resources.
func (f *Static) Close() error {
	return nil
}

var _ Fetcher = (*Static)(nil)
