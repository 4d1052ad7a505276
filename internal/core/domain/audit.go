package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEvent records an auth or admin action for the persistent audit trail.
// Super-admin actions carry a zero AccountID/UserID.
type AuditEvent struct {
	AccountID uuid.UUID `json:"account_id"`
	UserID    uuid.UUID `json:"user_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	At        time.Time `json:"at"`
}
