package entity

import (
	"context"
	"time"
)

// fixedTimeProvider returns a constant time for deterministic assertions
type fixedTimeProvider struct {
	now time.Time
}

func newFixedTimeProvider() *fixedTimeProvider {
	return &fixedTimeProvider{now: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func (p *fixedTimeProvider) Since(t time.Time) time.Duration {
	return p.now.Sub(t)
}

func (p *fixedTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}
