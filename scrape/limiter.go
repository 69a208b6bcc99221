package scrape

import (
	"context"

	"github.com/fwojciec/nyhetsindex"
	"golang.org/x/time/rate"
)

// Ensure Limiter implements nyhetsindex.Limiter at compile time.
var _ nyhetsindex.Limiter = (*Limiter)(nil)

// Limiter paces requests to the source site using a token bucket with a
// burst of 1, so consecutive detail fetches are spaced 1/rps apart.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a Limiter allowing rps requests per second.
func NewLimiter(rps float64) *Limiter {
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Wait blocks until the next request is allowed.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
