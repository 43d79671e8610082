// Package progress defines the events emitted as the crawl advances and the
// sinks that consume them.
package progress

import (
	"time"

	"github.com/docsnap/docsnap/internal/logger"
)

// Event captures one successfully written page.
type Event struct {
	// Pages is the running count of pages written, including this one.
	Pages int
	// TotalWords is the cumulative whitespace-delimited word count.
	TotalWords int
	// PageWords is this page's word count.
	PageWords int
	// URL is the normalized page URL.
	URL string
}

// Summary captures the final counters of a finished crawl.
type Summary struct {
	Pages   int
	Words   int
	Elapsed time.Duration
}

// Sink consumes progress events. The crawl engine calls it synchronously
// from its single loop, so implementations need no locking.
type Sink interface {
	Page(Event)
	Done(Summary)
}

// LogSink reports progress through the structured logger.
type LogSink struct{}

// Page logs one per-page progress line.
func (LogSink) Page(e Event) {
	logger.Info("page written",
		"pages", e.Pages,
		"words", e.TotalWords,
		"page_words", e.PageWords,
		"url", e.URL)
}

// Done logs the final crawl summary.
func (LogSink) Done(s Summary) {
	logger.Info("crawl complete",
		"pages", s.Pages,
		"words", s.Words,
		"elapsed", s.Elapsed.Round(time.Millisecond))
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Page(Event)   {}
func (NopSink) Done(Summary) {}
