package crawler

import "testing"

// --- Normalize Tests ---

func TestNormalize_ResolvesRelative(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		href     string
		expected string
	}{
		{"absolute path", "https://docs.example.com/guide", "/api", "https://docs.example.com/api"},
		{"relative path", "https://docs.example.com/guide/intro", "setup", "https://docs.example.com/guide/setup"},
		{"absolute url", "https://docs.example.com/", "https://docs.example.com/faq", "https://docs.example.com/faq"},
		{"parent path", "https://docs.example.com/a/b", "../c", "https://docs.example.com/c"},
		{"whitespace padded", "https://docs.example.com/", "  /guide  ", "https://docs.example.com/guide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.base, tt.href)
			if !ok {
				t.Fatalf("Normalize(%q, %q) reported invalid", tt.base, tt.href)
			}
			if got != tt.expected {
				t.Errorf("Normalize(%q, %q) = %q, want %q", tt.base, tt.href, got, tt.expected)
			}
		})
	}
}

func TestNormalize_PathCanonicalization(t *testing.T) {
	tests := []struct {
		href     string
		expected string
	}{
		{"https://x.com/a/b/", "https://x.com/a/b"},
		{"https://x.com/a/b///", "https://x.com/a/b"},
		{"https://x.com/", "https://x.com/"},
		{"https://x.com", "https://x.com/"},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			got, ok := Normalize(tt.href, tt.href)
			if !ok {
				t.Fatalf("Normalize(%q) reported invalid", tt.href)
			}
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.href, got, tt.expected)
			}
		})
	}
}

func TestNormalize_StripsFragment(t *testing.T) {
	got, ok := Normalize("https://x.com/", "https://x.com/a#sec1")
	if !ok {
		t.Fatal("Normalize reported invalid")
	}
	if got != "https://x.com/a" {
		t.Errorf("got %q, want %q", got, "https://x.com/a")
	}
}

func TestNormalize_PreservesQuery(t *testing.T) {
	got, ok := Normalize("https://x.com/", "/search?q=frontier&page=2#results")
	if !ok {
		t.Fatal("Normalize reported invalid")
	}
	if got != "https://x.com/search?q=frontier&page=2" {
		t.Errorf("got %q, want query preserved and fragment stripped", got)
	}
}

func TestNormalize_RejectsSchemes(t *testing.T) {
	tests := []string{
		"mailto:team@example.com",
		"tel:+15551234567",
		"javascript:void(0)",
		"ftp://files.example.com/readme.txt",
	}

	for _, href := range tests {
		t.Run(href, func(t *testing.T) {
			if got, ok := Normalize("https://docs.example.com/", href); ok {
				t.Errorf("Normalize accepted %q as %q, want invalid", href, got)
			}
		})
	}
}

func TestNormalize_RejectsEmpty(t *testing.T) {
	for _, href := range []string{"", "   ", "\t\n"} {
		if _, ok := Normalize("https://docs.example.com/", href); ok {
			t.Errorf("Normalize accepted empty href %q", href)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []struct {
		base string
		href string
	}{
		{"https://x.com/", "https://x.com/a/b/"},
		{"https://x.com/", "/guide#install"},
		{"https://x.com", "https://x.com"},
		{"https://x.com/docs/", "?version=2"},
	}

	for _, tt := range inputs {
		t.Run(tt.href, func(t *testing.T) {
			once, ok := Normalize(tt.base, tt.href)
			if !ok {
				t.Fatalf("Normalize(%q, %q) reported invalid", tt.base, tt.href)
			}
			twice, ok := Normalize(once, once)
			if !ok {
				t.Fatalf("Normalize(%q, %q) reported invalid on second pass", once, once)
			}
			if once != twice {
				t.Errorf("not idempotent: first %q, second %q", once, twice)
			}
		})
	}
}

// --- InScope Tests ---

func TestInScope(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		rootHost string
		expected bool
	}{
		{"same host", "https://docs.example.com/guide", "docs.example.com", true},
		{"same host http", "http://docs.example.com/guide", "docs.example.com", true},
		{"sibling subdomain", "https://blog.example.com/post", "docs.example.com", false},
		{"parent domain", "https://example.com/", "docs.example.com", false},
		{"different port", "https://docs.example.com:8080/", "docs.example.com", false},
		{"matching port", "https://docs.example.com:8080/", "docs.example.com:8080", true},
		{"unparseable", "://invalid", "docs.example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InScope(tt.url, tt.rootHost); got != tt.expected {
				t.Errorf("InScope(%q, %q) = %v, want %v", tt.url, tt.rootHost, got, tt.expected)
			}
		})
	}
}
