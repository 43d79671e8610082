// Package extract converts the main content region of an HTML document into
// a simplified markdown representation. Extraction is a pure function of the
// DOM: the same document always yields byte-identical output.
package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// DefaultContainerSelectors is the priority-ordered list of selectors tried
// when locating the main content region. The first selector matching any
// element wins; otherwise extraction falls back to body, then the document.
var DefaultContainerSelectors = []string{
	"main",
	"article",
	"[role='main']",
	".content",
	".markdown",
	".docs-content",
}

// DefaultRemoveSelectors matches boilerplate regions stripped before
// container selection, so navigational chrome never leaks into output.
var DefaultRemoveSelectors = []string{
	"nav", "footer", "aside", "script", "style", "noscript",
}

// walkSelector enumerates the element kinds emitted as markdown, visited in
// document order.
const walkSelector = "h1, h2, h3, h4, h5, h6, p, li, blockquote, pre, code"

var (
	langPatterns = []*regexp.Regexp{
		regexp.MustCompile(`language-([a-zA-Z0-9_+-]+)`),
		regexp.MustCompile(`lang-([a-zA-Z0-9_+-]+)`),
	}
	blankRuns = regexp.MustCompile(`\n{3,}`)
)

// Extractor turns a parsed document into markdown text.
type Extractor struct {
	containers []string
	removals   []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithContainerSelectors prepends selectors tried before the defaults when
// locating the content container.
func WithContainerSelectors(selectors ...string) Option {
	return func(e *Extractor) {
		e.containers = append(selectors, e.containers...)
	}
}

// WithRemoveSelectors adds selectors stripped as boilerplate in addition to
// the defaults.
func WithRemoveSelectors(selectors ...string) Option {
	return func(e *Extractor) {
		e.removals = append(e.removals, selectors...)
	}
}

// New creates an Extractor with the default selector sets.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		containers: append([]string(nil), DefaultContainerSelectors...),
		removals:   append([]string(nil), DefaultRemoveSelectors...),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract strips boilerplate from doc, selects the content container and
// returns its markdown rendering. The document is mutated: callers needing
// the full DOM (e.g. for link discovery) must read it first.
func (e *Extractor) Extract(doc *goquery.Document) string {
	e.StripBoilerplate(doc)
	return Markdown(e.Container(doc))
}

// StripBoilerplate removes the configured boilerplate regions from doc.
func (e *Extractor) StripBoilerplate(doc *goquery.Document) {
	doc.Find(strings.Join(e.removals, ", ")).Remove()
}

// Container selects the main content region of doc.
func (e *Extractor) Container(doc *goquery.Document) *goquery.Selection {
	for _, selector := range e.containers {
		if sel := doc.Find(selector); sel.Length() > 0 {
			return sel.First()
		}
	}
	if body := doc.Find("body"); body.Length() > 0 {
		return body.First()
	}
	return doc.Selection
}

// Markdown walks container in document order and renders headings,
// paragraphs, list items, blockquotes and code blocks as markdown lines.
func Markdown(container *goquery.Selection) string {
	var lines []string

	container.Find(walkSelector).Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)

		switch name {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			// Demote one level; level 1 is reserved for the page title.
			level := min(int(name[1]-'0')+1, 6)
			if text := Text(s); text != "" {
				lines = append(lines, strings.Repeat("#", level)+" "+text)
			}

		case "p":
			if text := Text(s); text != "" {
				lines = append(lines, text)
			}

		case "li":
			if text := Text(s); text != "" {
				lines = append(lines, "- "+text)
			}

		case "blockquote":
			if text := Text(s); text != "" {
				lines = append(lines, "> "+text)
			}

		case "pre":
			code := strings.Trim(s.Text(), "\n")
			if code == "" {
				return
			}
			lang := ""
			if child := s.Find("code").First(); child.Length() > 0 {
				lang = inferLanguage(child)
			}
			lines = append(lines, "```"+lang, code, "```")

		case "code":
			// Inside a pre it was already emitted as part of the block.
			if goquery.NodeName(s.Parent()) == "pre" {
				return
			}
			text := strings.Trim(s.Text(), "\n")
			if text == "" {
				return
			}
			lines = append(lines, "```"+inferLanguage(s), text, "```")
		}
	})

	result := strings.Join(lines, "\n")
	result = blankRuns.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// Flatten collapses any run of whitespace to a single space and trims the
// result. Entity decoding already happened during parsing.
func Flatten(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Text flattens the text content of s, keeping a space between adjacent text
// nodes so inline markup boundaries do not glue words together. A plain
// goquery Text() would render <p>foo<b>bar</b></p> as "foobar".
func Text(s *goquery.Selection) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			parts = append(parts, n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return Flatten(strings.Join(parts, " "))
}

// inferLanguage finds a language-<id> or lang-<id> class token on s, then on
// its parent, and returns the lowercased id. Empty when nothing matches.
func inferLanguage(s *goquery.Selection) string {
	for _, target := range []*goquery.Selection{s, s.Parent()} {
		class, _ := target.Attr("class")
		for _, pattern := range langPatterns {
			if m := pattern.FindStringSubmatch(class); m != nil {
				return strings.ToLower(m[1])
			}
		}
	}
	return ""
}
