package crawler

import (
	"net/url"
	"strings"
)

// skippedSchemes are href prefixes that never lead to crawlable pages.
var skippedSchemes = []string{"mailto:", "tel:", "javascript:"}

// Normalize resolves href against base and returns the canonical form used
// for deduplication. The second return is false when the href cannot produce
// a crawlable http(s) URL.
//
// Canonical form: fragment stripped, query preserved, empty path rendered as
// "/", trailing slashes removed from any non-root path. Normalizing an
// already-normalized URL yields itself.
func Normalize(base, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", false
	}
	for _, scheme := range skippedSchemes {
		if strings.HasPrefix(href, scheme) {
			return "", false
		}
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return "", false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}

	resolved := baseURL.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", false
	}

	resolved.Fragment = ""
	resolved.RawFragment = ""

	path := resolved.Path
	if path == "" {
		path = "/"
	}
	if path != "/" {
		path = strings.TrimRight(path, "/")
	}
	resolved.Path = path
	resolved.RawPath = ""

	return resolved.String(), true
}

// InScope reports whether rawURL belongs to the crawl root's network
// location. The comparison is exact host string equality: no subdomain
// wildcards, no scheme equivalence.
func InScope(rawURL, rootHost string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Host == rootHost
}
