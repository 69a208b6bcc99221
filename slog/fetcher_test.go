package slog_test

import (
	"bytes"
	"context"
	"errors"
	stdslog "log/slog"
	"testing"

	"github.com/fwojciec/nyhetsindex/mock"
	"github.com/fwojciec/nyhetsindex/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs successful fetches", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))

		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}
		f := slog.NewFetcher(inner, logger)

		body, err := f.Fetch(context.Background(), "https://www.linkoping.se/nyheter/")

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", body)
		assert.Contains(t, buf.String(), "fetched")
		assert.Contains(t, buf.String(), "https://www.linkoping.se/nyheter/")
	})

	t.Run("logs and propagates errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("connection refused")
			},
		}
		f := slog.NewFetcher(inner, logger)

		_, err := f.Fetch(context.Background(), "https://www.linkoping.se/nyheter/")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "fetch failed")
		assert.Contains(t, buf.String(), "connection refused")
	})

	t.Run("closes the wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}
		f := slog.NewFetcher(inner, stdslog.New(stdslog.NewTextHandler(&bytes.Buffer{}, nil)))

		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}
