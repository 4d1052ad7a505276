package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

// SessionRepository persists refresh-token sessions.
type SessionRepository interface {
	// Replace atomically removes any prior sessions for the session's
	// (account, user) pair and inserts the new row: one active session
	// per user.
	Replace(ctx context.Context, session *domain.Session) error
	FindByToken(ctx context.Context, tokenValue string) (*domain.Session, error)
	// DeleteByUser removes the user's sessions and returns how many rows
	// were deleted.
	DeleteByUser(ctx context.Context, accountID, userID uuid.UUID) (int64, error)
}
