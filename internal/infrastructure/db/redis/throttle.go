package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	attemptWindow = 15 * time.Minute
	maxAttempts   = 10
)

// LoginThrottle counts failed login attempts per (account, user) in Redis.
// Key format: login_fail:<account_name>:<user_name>, expiring after the
// attempt window so a lockout always clears itself.
type LoginThrottle struct {
	client *redis.Client
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
func NewLoginThrottle(client *redis.Client) *LoginThrottle {
	return &LoginThrottle{client: client}
}

// Blocked reports whether the principal has exhausted its attempt budget.
func (t *LoginThrottle) Blocked(ctx context.Context, accountName, userName string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(accountName, userName)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= maxAttempts, nil
}

// RecordFailure increments the failure counter and refreshes its window.
func (t *LoginThrottle) RecordFailure(ctx context.Context, accountName, userName string) error {
	key := t.key(accountName, userName)
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, attemptWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("throttle record: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, accountName, userName string) error {
	return t.client.Del(ctx, t.key(accountName, userName)).Err()
}

func (t *LoginThrottle) key(accountName, userName string) string {
	return fmt.Sprintf("login_fail:%s:%s", accountName, userName)
}
