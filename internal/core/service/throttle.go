package service

import (
	"context"
	"time"
)

// DefaultRefreshDelay is the artificial latency applied to every successful
// refresh, rate-limiting brute force against the opaque token space.
const DefaultRefreshDelay = 500 * time.Millisecond

// RefreshThrottle delays the refresh path. It is a policy, not a hardcoded
// sleep, so tests and future deployments can swap it out.
type RefreshThrottle interface {
	Wait(ctx context.Context) error
}

// FixedDelayThrottle waits a constant duration, honouring ctx cancellation.
type FixedDelayThrottle struct {
	Delay time.Duration
}

func (t FixedDelayThrottle) Wait(ctx context.Context) error {
	timer := time.NewTimer(t.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoThrottle skips the delay entirely. Used in tests.
type NoThrottle struct{}

func (NoThrottle) Wait(context.Context) error { return nil }

// UnlimitedAttempts is a ports.LoginThrottle that never blocks. It stands
// in for the redis-backed throttle when no redis client is configured, and
// in tests.
type UnlimitedAttempts struct{}

func (UnlimitedAttempts) Blocked(context.Context, string, string) (bool, error) { return false, nil }
func (UnlimitedAttempts) RecordFailure(context.Context, string, string) error   { return nil }
func (UnlimitedAttempts) Reset(context.Context, string, string) error           { return nil }
