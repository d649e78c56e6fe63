// Package readability implements cratedocs.ContentExtractor with
// go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/cratedocs"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements cratedocs.ContentExtractor at compile time.
var _ cratedocs.ContentExtractor = (*Extractor)(nil)

// Extractor narrows a docs page to its article body.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main content of the page. Pages readability does not
// consider articles, such as a bare navigation list, yield an empty result.
func (e *Extractor) Extract(rawHTML string) (*cratedocs.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" || !readability.Check(strings.NewReader(rawHTML)) {
		return &cratedocs.ExtractResult{}, nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, cratedocs.Errorf(cratedocs.EINTERNAL, "readability: %v", err)
	}

	return &cratedocs.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
