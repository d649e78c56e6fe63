package mock

import "github.com/fwojciec/cratedocs"

var _ cratedocs.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of cratedocs.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

var _ cratedocs.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of cratedocs.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*cratedocs.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*cratedocs.ExtractResult, error) {
	return e.ExtractFn(html)
}
