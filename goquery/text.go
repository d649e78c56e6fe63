// Package goquery implements cratedocs.TextExtractor on top of goquery and
// golang.org/x/net/html.
package goquery

import (
	"io"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cratedocs"
	"golang.org/x/net/html"
)

// Ensure TextExtractor implements cratedocs.TextExtractor at compile time.
var _ cratedocs.TextExtractor = (*TextExtractor)(nil)

// TextExtractor flattens HTML into the text of every text node under the
// root element, joined by spaces and whitespace-normalized.
type TextExtractor struct {
	content cratedocs.ContentExtractor
	logger  *slog.Logger
}

// Option configures a TextExtractor.
type Option func(*TextExtractor)

// WithContentExtractor narrows each page to its main content before text is
// collected. Pages for which no main content is found, or on which the
// content extractor fails, are flattened whole.
func WithContentExtractor(ce cratedocs.ContentExtractor) Option {
	return func(e *TextExtractor) {
		e.content = ce
	}
}

// WithLogger sets the logger that records content extractor failures.
func WithLogger(logger *slog.Logger) Option {
	return func(e *TextExtractor) {
		e.logger = logger
	}
}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor(opts ...Option) *TextExtractor {
	e := &TextExtractor{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractText returns the flattened text of the page.
func (e *TextExtractor) ExtractText(rawHTML string) (string, error) {
	if e.content != nil {
		rawHTML = e.mainContent(rawHTML)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", cratedocs.Errorf(cratedocs.EINTERNAL, "failed to parse HTML: %v", err)
	}

	root := rootElement(doc.Selection.Nodes[0])
	if root == nil {
		return "", nil
	}

	var parts []string
	collectText(root, &parts)
	return cratedocs.NormalizeSpace(strings.Join(parts, " ")), nil
}

// mainContent returns the main content of the page, or the page itself when
// none is found.
func (e *TextExtractor) mainContent(rawHTML string) string {
	result, err := e.content.Extract(rawHTML)
	if err != nil {
		e.logger.Debug("content extraction failed, flattening whole page",
			"bytes", len(rawHTML),
			"err", cratedocs.ErrorMessage(err),
		)
		return rawHTML
	}
	if strings.TrimSpace(result.ContentHTML) == "" {
		return rawHTML
	}
	return result.ContentHTML
}

// rootElement returns the first element child of the document node.
func rootElement(doc *html.Node) *html.Node {
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// collectText appends the data of every text node below n in document order.
// Text inside script and style elements is included.
func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		*parts = append(*parts, n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
