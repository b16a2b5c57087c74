package scraper

import (
	"context"
	"math/rand"
	"time"
)

// Pacer decides how long to pause between two page requests.
type Pacer interface {
	Wait(ctx context.Context) error
}

// NoPause never waits. Useful for tests and for platforms without throttling.
var NoPause Pacer = noPause{}

type noPause struct{}

func (noPause) Wait(ctx context.Context) error {
	return ctx.Err()
}

// RandomPacer waits a random duration between Min and Max.
// With Max <= Min it always waits Min; a zero Min and Max disables waiting.
type RandomPacer struct {
	Min time.Duration
	Max time.Duration
}

// FixedPacer returns a pacer that always waits d
func FixedPacer(d time.Duration) Pacer {
	if d <= 0 {
		return NoPause
	}
	return RandomPacer{Min: d, Max: d}
}

// Wait blocks for the next delay or until ctx is done.
func (p RandomPacer) Wait(ctx context.Context) error {
	delay := p.next()
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p RandomPacer) next() time.Duration {
	if p.Max <= p.Min {
		return p.Min
	}
	return time.Duration(rand.Int63n(int64(p.Max-p.Min))) + p.Min
}
