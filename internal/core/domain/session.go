package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionTTL is the fixed lifetime of a refresh-token session: one week.
const SessionTTL = 604800 * time.Second

// Session binds an opaque refresh token to an (account, user) pair. The
// token value carries no claims; at refresh time the user row is re-read to
// build fresh identity claims. Timestamps are epoch seconds to match the
// lazy expiry check (expiry is never swept proactively).
type Session struct {
	TokenID    uuid.UUID `json:"token_id"`
	AccountID  uuid.UUID `json:"account_id"`
	UserID     uuid.UUID `json:"user_id"`
	TokenValue string    `json:"-"`
	CreatedAt  int64     `json:"created_at"`
	Expiry     int64     `json:"expiry"`
}

// Expired reports whether the session is past its TTL at the given instant.
func (s Session) Expired(now time.Time) bool {
	return now.Unix() > s.Expiry
}
