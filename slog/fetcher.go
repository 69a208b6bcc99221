// Package slog provides logging decorators for nyhetsindex services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/nyhetsindex"
)

// Compile-time interface verification.
var _ nyhetsindex.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a nyhetsindex.Fetcher with structured logging of each
// request, its duration and outcome.
type Fetcher struct {
	fetcher nyhetsindex.Fetcher
	logger  *slog.Logger
}

// NewFetcher creates a logging Fetcher wrapping the given fetcher.
func NewFetcher(fetcher nyhetsindex.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{fetcher: fetcher, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the result.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	start := time.Now()
	body, err := f.fetcher.Fetch(ctx, url)
	elapsed := time.Since(start)

	if err != nil {
		f.logger.Warn("fetch failed",
			slog.String("url", url),
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()),
		)
		return "", err
	}

	f.logger.Debug("fetched",
		slog.String("url", url),
		slog.Duration("elapsed", elapsed),
		slog.Int("bytes", len(body)),
	)
	return body, nil
}

// Close closes the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.fetcher.Close()
}
