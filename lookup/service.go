// Package lookup resolves relay commands into docs.rs page text.
// It composes a Fetcher and a TextExtractor; it holds no state of its own.
package lookup

import (
	"context"

	"github.com/fwojciec/cratedocs"
)

// Ensure Service implements cratedocs.CommandService at compile time.
var _ cratedocs.CommandService = (*Service)(nil)

// Service executes lookup_crate_docs commands.
type Service struct {
	Fetcher   cratedocs.Fetcher
	Extractor cratedocs.TextExtractor

	// BaseURL of the docs host. Defaults to cratedocs.DefaultDocsBaseURL.
	BaseURL string
}

// Execute validates the command, fetches the crate's docs page and returns
// its truncated text.
func (s *Service) Execute(ctx context.Context, cmd *cratedocs.Command) (*cratedocs.Response, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	url := cratedocs.DocsURL(s.baseURL(), cmd.CrateName())

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		if cratedocs.ErrorCode(err) == cratedocs.EUPSTREAM {
			return nil, cratedocs.Errorf(cratedocs.EUPSTREAM, "Failed to fetch documentation: %s", cratedocs.ErrorMessage(err))
		}
		return nil, cratedocs.Errorf(cratedocs.EUNAVAILABLE, "Error contacting docs.rs: %v", err)
	}

	text, err := s.Extractor.ExtractText(html)
	if err != nil {
		return nil, cratedocs.Errorf(cratedocs.EINTERNAL, "Failed to extract documentation text: %s", cratedocs.ErrorMessage(err))
	}

	return cratedocs.NewTextResponse(cratedocs.Truncate(text, url)), nil
}

// URL returns the docs page the command resolves to.
func (s *Service) URL(cmd *cratedocs.Command) string {
	return cratedocs.DocsURL(s.baseURL(), cmd.CrateName())
}

func (s *Service) baseURL() string {
	if s.BaseURL == "" {
		return cratedocs.DefaultDocsBaseURL
	}
	return s.BaseURL
}
