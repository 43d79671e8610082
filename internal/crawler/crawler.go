package crawler

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/docsnap/docsnap/internal/extract"
	"github.com/docsnap/docsnap/internal/fetch"
	"github.com/docsnap/docsnap/internal/logger"
	"github.com/docsnap/docsnap/internal/output"
	"github.com/docsnap/docsnap/internal/progress"
)

// ErrInvalidStartURL is returned before any network activity when the start
// URL does not use an http or https scheme.
var ErrInvalidStartURL = errors.New("start URL must use http or https")

// Stats holds the final crawl counters.
type Stats struct {
	Pages int
	Words int
}

// Config holds engine configuration.
type Config struct {
	// Delay paces requests; zero disables rate limiting.
	Delay time.Duration
}

// Engine owns the frontier and drives the fetch, extract, write loop. It is
// deliberately single-threaded: one page completes fully before the next is
// processed, so output order is exactly breadth-first visitation order.
type Engine struct {
	fetcher   fetch.Fetcher
	extractor *extract.Extractor
	writer    *output.Writer
	sink      progress.Sink
	config    Config
}

// New creates a crawl engine.
func New(f fetch.Fetcher, ex *extract.Extractor, w *output.Writer, sink progress.Sink, cfg Config) *Engine {
	if sink == nil {
		sink = progress.NopSink{}
	}
	return &Engine{
		fetcher:   f,
		extractor: ex,
		writer:    w,
		sink:      sink,
		config:    cfg,
	}
}

// Run crawls every same-domain page reachable from startURL, writing one
// record per successfully processed page. Per-URL fetch and parse failures
// are logged and skipped; only an invalid start URL is fatal.
func (e *Engine) Run(ctx context.Context, startURL string) (Stats, error) {
	var stats Stats

	parsed, err := url.Parse(startURL)
	if err != nil {
		return stats, fmt.Errorf("%w: %v", ErrInvalidStartURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return stats, fmt.Errorf("%w: got %q", ErrInvalidStartURL, startURL)
	}
	rootHost := parsed.Host

	seed, ok := Normalize(startURL, startURL)
	if !ok {
		return stats, fmt.Errorf("%w: got %q", ErrInvalidStartURL, startURL)
	}

	frontier := NewFrontier()
	frontier.Push(seed)

	var limiter *rate.Limiter
	if e.config.Delay > 0 {
		limiter = rate.NewLimiter(rate.Every(e.config.Delay), 1)
	}

	logger.Debug("crawl starting", "start", seed, "host", rootHost, "delay", e.config.Delay)
	started := time.Now()

	for {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		pageURL, ok := frontier.Pop()
		if !ok {
			break
		}
		if !frontier.Visit(pageURL) {
			continue
		}

		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return stats, err
			}
		}

		pageWords, err := e.processPage(ctx, pageURL, rootHost, frontier)
		if err != nil {
			return stats, err
		}
		if pageWords < 0 {
			// Page was skipped without a record.
			continue
		}

		stats.Pages++
		stats.Words += pageWords
		e.sink.Page(progress.Event{
			Pages:      stats.Pages,
			TotalWords: stats.Words,
			PageWords:  pageWords,
			URL:        pageURL,
		})
	}

	e.sink.Done(progress.Summary{
		Pages:   stats.Pages,
		Words:   stats.Words,
		Elapsed: time.Since(started),
	})
	return stats, nil
}

// processPage fetches, extracts and writes a single page, then enqueues its
// in-scope links. It returns the page's word count, or -1 when the page was
// skipped. The only error it propagates is an output write failure.
func (e *Engine) processPage(ctx context.Context, pageURL, rootHost string, frontier *Frontier) (int, error) {
	page, err := e.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		// A status error still delivered a response; if that response is
		// non-HTML it gets the same silent skip as a successful non-HTML
		// fetch. Only failures on HTML responses, or failures with no
		// response at all, are worth a warning.
		if page.StatusCode != 0 && !page.IsHTML() {
			logger.Debug("skipping non-HTML response", "url", pageURL, "content_type", page.ContentType)
			return -1, nil
		}
		logger.Warn("fetch failed", "url", pageURL, "error", err)
		return -1, nil
	}
	if !page.IsHTML() {
		// Silent skip: non-HTML responses are expected, not failures.
		logger.Debug("skipping non-HTML response", "url", pageURL, "content_type", page.ContentType)
		return -1, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		logger.Warn("parse failed", "url", pageURL, "error", err)
		return -1, nil
	}

	title := pageURL
	if sel := doc.Find("title"); sel.Length() > 0 {
		title = extract.Text(sel.First())
	}

	// Link discovery scans the full parse; collect hrefs before extraction
	// mutates the document.
	var hrefs []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if href, exists := s.Attr("href"); exists {
			hrefs = append(hrefs, href)
		}
	})

	body := e.extractor.Extract(doc)

	if err := e.writer.WritePage(title, pageURL, body); err != nil {
		return -1, fmt.Errorf("write page %s: %w", pageURL, err)
	}

	for _, href := range hrefs {
		next, ok := Normalize(pageURL, href)
		if !ok {
			continue
		}
		if !InScope(next, rootHost) {
			continue
		}
		if frontier.Visited(next) {
			continue
		}
		frontier.Push(next)
	}

	return len(strings.Fields(body)), nil
}
