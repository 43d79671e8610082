package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/docsnap/docsnap/internal/logger"
)

func TestLogSink_Page(t *testing.T) {
	buf := &bytes.Buffer{}
	logger.Init(logger.Options{Output: buf})
	defer logger.Init(logger.Options{})

	LogSink{}.Page(Event{
		Pages:      3,
		TotalWords: 1200,
		PageWords:  400,
		URL:        "https://docs.example.com/guide",
	})

	out := buf.String()
	for _, want := range []string{"page written", "pages=3", "words=1200", "page_words=400", "https://docs.example.com/guide"} {
		if !strings.Contains(out, want) {
			t.Errorf("log line missing %q, got %q", want, out)
		}
	}
}

func TestLogSink_Done(t *testing.T) {
	buf := &bytes.Buffer{}
	logger.Init(logger.Options{Output: buf})
	defer logger.Init(logger.Options{})

	LogSink{}.Done(Summary{Pages: 10, Words: 5000, Elapsed: 2 * time.Second})

	out := buf.String()
	for _, want := range []string{"crawl complete", "pages=10", "words=5000"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary line missing %q, got %q", want, out)
		}
	}
}

func TestNopSink(t *testing.T) {
	// Must be safe to call with arbitrary values.
	var s Sink = NopSink{}
	s.Page(Event{})
	s.Done(Summary{})
}
