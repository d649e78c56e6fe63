// Package trafilatura implements cratedocs.ContentExtractor with
// go-trafilatura. It narrows docs pages to their main content before they
// are flattened to text.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/cratedocs"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements cratedocs.ContentExtractor at compile time.
var _ cratedocs.ContentExtractor = (*Extractor)(nil)

// Extractor narrows a docs page to the crate description and item listings
// rustdoc renders in its main section.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor. Rustdoc pages carry no comment
// sections, so comment extraction is turned off.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
		},
	}
}

// Extract returns the main content of the page. A blank page has no main
// content and yields an empty result.
func (e *Extractor) Extract(rawHTML string) (*cratedocs.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &cratedocs.ExtractResult{}, nil
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, cratedocs.Errorf(cratedocs.EINTERNAL, "trafilatura: %v", err)
	}

	out := &cratedocs.ExtractResult{Title: result.Metadata.Title}
	if result.ContentNode == nil || strings.TrimSpace(result.ContentText) == "" {
		return out, nil
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return nil, cratedocs.Errorf(cratedocs.EINTERNAL, "trafilatura: render content: %v", err)
	}
	out.ContentHTML = buf.String()
	return out, nil
}
