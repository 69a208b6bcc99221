// Package index provides vector index orchestration: idempotent
// provisioning, embedding + upsert of scraped articles, and query-time
// search.
package index

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/fwojciec/nyhetsindex"
)

const (
	// DefaultPollInterval is the readiness polling interval.
	DefaultPollInterval = time.Second

	// DefaultMaxAttempts bounds readiness polling so a stuck index does
	// not hang the pipeline forever.
	DefaultMaxAttempts = 180
)

// Provisioner ensures a vector index exists and is ready.
type Provisioner struct {
	Admin        nyhetsindex.IndexAdmin
	Logger       *slog.Logger
	PollInterval time.Duration // defaults to DefaultPollInterval
	MaxAttempts  int           // defaults to DefaultMaxAttempts
}

// EnsureReady creates the index described by spec if it does not exist
// and blocks until it reports ready. Idempotent: an existing index is
// never re-created. An introspection failure while listing indexes is
// treated as "index not found"; creation then either succeeds or fails
// definitively.
func (p *Provisioner) EnsureReady(ctx context.Context, spec nyhetsindex.IndexSpec) error {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	names, err := p.Admin.ListIndexNames(ctx)
	if err != nil {
		logger.Warn("listing indexes failed, assuming index is absent", "error", err)
		names = nil
	}

	if !slices.Contains(names, spec.Name) {
		logger.Info("creating index", "name", spec.Name, "dimension", spec.Dimension, "metric", spec.Metric)
		if err := p.Admin.CreateIndex(ctx, spec); err != nil {
			return err
		}
	}

	interval := p.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	for i := 0; i < attempts; i++ {
		ready, err := p.Admin.IndexReady(ctx, spec.Name)
		if err == nil && ready {
			return nil
		}
		if err != nil {
			logger.Warn("readiness check failed", "name", spec.Name, "error", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}

	return nyhetsindex.Errorf(nyhetsindex.EUNAVAILABLE, "index %q not ready after %d attempts", spec.Name, attempts)
}
