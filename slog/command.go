package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cratedocs"
)

// Ensure LoggingCommandService implements cratedocs.CommandService.
var _ cratedocs.CommandService = (*LoggingCommandService)(nil)

// LoggingCommandService wraps a CommandService with logging. Rejected
// commands are logged at info level, failed lookups at error level.
type LoggingCommandService struct {
	next   cratedocs.CommandService
	logger *slog.Logger
}

// NewLoggingCommandService creates a new LoggingCommandService.
func NewLoggingCommandService(next cratedocs.CommandService, logger *slog.Logger) *LoggingCommandService {
	return &LoggingCommandService{next: next, logger: logger}
}

// Execute delegates to the wrapped service and logs the outcome.
func (s *LoggingCommandService) Execute(ctx context.Context, cmd *cratedocs.Command) (resp *cratedocs.Response, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		switch cratedocs.ErrorCode(err) {
		case "", cratedocs.EINVALID:
		default:
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "execute",
			"command", cmd.Command,
			"crate", cmd.CrateName(),
			"chars", len([]rune(resp.Text())),
			"duration", time.Since(begin),
			"err", cratedocs.ErrorMessage(err),
		)
	}(time.Now())
	return s.next.Execute(ctx, cmd)
}
