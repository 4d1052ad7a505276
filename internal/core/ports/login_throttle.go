package ports

import "context"

// LoginThrottle rate-limits credential guessing on the login endpoint.
// Implementations track failed attempts per (account, user) with a decaying
// window.
type LoginThrottle interface {
	// Blocked reports whether further attempts for this principal should
	// be rejected outright.
	Blocked(ctx context.Context, accountName, userName string) (bool, error)
	RecordFailure(ctx context.Context, accountName, userName string) error
	Reset(ctx context.Context, accountName, userName string) error
}
