// Package crawler drives the breadth-first crawl of a documentation site.
package crawler

import "sync"

// Frontier pairs the FIFO queue of discovered URLs with the set of URLs
// already processed. URLs are expected to be normalized before they reach
// the frontier.
//
// Deduplication happens at dequeue time via Visit: the queue may transiently
// hold the same URL more than once, but each URL is processed at most once.
type Frontier struct {
	mu      sync.Mutex
	queue   []string
	visited map[string]struct{}
}

// NewFrontier creates an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		visited: make(map[string]struct{}),
	}
}

// Push appends a URL to the queue. Duplicates of queued-but-unprocessed
// URLs are tolerated; they collapse on Visit.
func (f *Frontier) Push(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queue = append(f.queue, url)
}

// Pop removes and returns the next URL in FIFO order.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// Visit marks a URL as processed. It returns false if the URL was already
// visited, in which case the caller must skip it without side effects.
func (f *Frontier) Visit(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.visited[url]; ok {
		return false
	}
	f.visited[url] = struct{}{}
	return true
}

// Visited reports whether a URL has already been processed.
func (f *Frontier) Visited(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.visited[url]
	return ok
}

// Len returns the number of queued URLs, including any transient duplicates.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}
