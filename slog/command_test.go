package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/cratedocs"
	"github.com/fwojciec/cratedocs/mock"
	crateslog "github.com/fwojciec/cratedocs/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingCommandService_Execute(t *testing.T) {
	t.Parallel()

	t.Run("logs successful lookup at info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.CommandService{
			ExecuteFn: func(ctx context.Context, cmd *cratedocs.Command) (*cratedocs.Response, error) {
				return cratedocs.NewTextResponse("Crate tokio"), nil
			},
		}

		svc := crateslog.NewLoggingCommandService(inner, logger)
		resp, err := svc.Execute(context.Background(), &cratedocs.Command{Command: cratedocs.CommandLookupCrateDocs})

		require.NoError(t, err)
		assert.Equal(t, "Crate tokio", resp.Text())
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "command=lookup_crate_docs")
		assert.Contains(t, output, "crate=tokio")
		assert.Contains(t, output, "chars=11")
	})

	t.Run("logs unknown command at info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.CommandService{
			ExecuteFn: func(ctx context.Context, cmd *cratedocs.Command) (*cratedocs.Response, error) {
				return nil, cratedocs.Errorf(cratedocs.EINVALID, "Unknown command")
			},
		}

		svc := crateslog.NewLoggingCommandService(inner, logger)
		_, err := svc.Execute(context.Background(), &cratedocs.Command{Command: "other"})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "command=other")
		assert.Contains(t, output, "err=\"Unknown command\"")
	})

	t.Run("logs upstream failure at error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.CommandService{
			ExecuteFn: func(ctx context.Context, cmd *cratedocs.Command) (*cratedocs.Response, error) {
				return nil, cratedocs.Errorf(cratedocs.EUPSTREAM, "Failed to fetch documentation: HTTP 404 Not Found")
			},
		}

		svc := crateslog.NewLoggingCommandService(inner, logger)
		_, err := svc.Execute(context.Background(), &cratedocs.Command{
			Command: cratedocs.CommandLookupCrateDocs,
			Args:    &cratedocs.Args{},
		})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "404")
	})
}
