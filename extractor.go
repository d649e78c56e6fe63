package cratedocs

// TextExtractor flattens an HTML page into plain text.
type TextExtractor interface {
	// ExtractText returns the text content of the page in document order,
	// with whitespace collapsed as by NormalizeSpace.
	ExtractText(html string) (string, error)
}

// ExtractResult holds the main content found in an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// ContentExtractor narrows an HTML page to its main content, removing
// boilerplate.
type ContentExtractor interface {
	Extract(html string) (*ExtractResult, error)
}
