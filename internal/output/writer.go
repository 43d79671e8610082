// Package output writes the consolidated markdown document, one record per
// crawled page.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Placeholder is written in place of the body when a page yielded no
// extractable content, so the gap stays visible to a human reviewer.
const Placeholder = "[No extractable content found]"

// Writer appends page records to a single output stream. It flushes after
// every record so partial output survives an interruption.
type Writer struct {
	bw     *bufio.Writer
	closer io.Closer
}

// NewWriter wraps an arbitrary stream, typically for tests.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// NewFile opens path in truncate mode and returns a writer owning the file.
func NewFile(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}
	return &Writer{bw: bufio.NewWriter(f), closer: f}, nil
}

// WritePage appends one page record and flushes the stream.
func (w *Writer) WritePage(title, sourceURL, body string) error {
	if body == "" {
		body = Placeholder
	}
	if _, err := fmt.Fprintf(w.bw, "# %s\nSource: %s\n\n%s\n\n---\n\n", title, sourceURL, body); err != nil {
		return fmt.Errorf("write page record: %w", err)
	}
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

// Close flushes buffered data and closes the underlying file, if any.
func (w *Writer) Close() error {
	if err := w.bw.Flush(); err != nil {
		return err
	}
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}
