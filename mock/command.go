package mock

import (
	"context"

	"github.com/fwojciec/cratedocs"
)

var _ cratedocs.CommandService = (*CommandService)(nil)

// CommandService is a mock implementation of cratedocs.CommandService.
type CommandService struct {
	ExecuteFn func(ctx context.Context, cmd *cratedocs.Command) (*cratedocs.Response, error)
}

func (s *CommandService) Execute(ctx context.Context, cmd *cratedocs.Command) (*cratedocs.Response, error) {
	return s.ExecuteFn(ctx, cmd)
}
