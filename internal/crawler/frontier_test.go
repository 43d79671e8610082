package crawler

import "testing"

func TestFrontier_FIFOOrder(t *testing.T) {
	f := NewFrontier()

	urls := []string{
		"https://docs.example.com/",
		"https://docs.example.com/a",
		"https://docs.example.com/b",
	}
	for _, u := range urls {
		f.Push(u)
	}

	for i, expected := range urls {
		got, ok := f.Pop()
		if !ok {
			t.Fatalf("Pop() returned false at index %d", i)
		}
		if got != expected {
			t.Errorf("Pop() = %q, want %q", got, expected)
		}
	}
}

func TestFrontier_PopEmpty(t *testing.T) {
	f := NewFrontier()

	url, ok := f.Pop()
	if ok {
		t.Error("Pop() should return false for empty frontier")
	}
	if url != "" {
		t.Errorf("expected empty URL, got %q", url)
	}
}

func TestFrontier_VisitOnce(t *testing.T) {
	f := NewFrontier()

	if !f.Visit("https://docs.example.com/a") {
		t.Error("Visit() should return true on first visit")
	}
	if f.Visit("https://docs.example.com/a") {
		t.Error("Visit() should return false on repeat visit")
	}
}

func TestFrontier_Visited(t *testing.T) {
	f := NewFrontier()

	if f.Visited("https://docs.example.com/a") {
		t.Error("Visited() should return false before Visit()")
	}
	f.Visit("https://docs.example.com/a")
	if !f.Visited("https://docs.example.com/a") {
		t.Error("Visited() should return true after Visit()")
	}
}

func TestFrontier_ToleratesQueuedDuplicates(t *testing.T) {
	f := NewFrontier()

	// The same URL may be discovered from several pages before it is
	// processed; dedup happens at dequeue time.
	f.Push("https://docs.example.com/dup")
	f.Push("https://docs.example.com/dup")

	if f.Len() != 2 {
		t.Fatalf("expected 2 queued entries, got %d", f.Len())
	}

	processed := 0
	for {
		url, ok := f.Pop()
		if !ok {
			break
		}
		if f.Visit(url) {
			processed++
		}
	}

	if processed != 1 {
		t.Errorf("expected duplicate to collapse to 1 processed URL, got %d", processed)
	}
}
