// Package mock provides function-field mock implementations of the
// domain interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/nyhetsindex"
)

var _ nyhetsindex.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of nyhetsindex.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ nyhetsindex.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of nyhetsindex.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}
