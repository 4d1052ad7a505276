package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/core/ports"
	"github.com/ledgerkeep/ledgerkeep/internal/core/token"
)

// SessionManager owns the refresh-token lifecycle: create at login, validate
// on every refresh, revoke at logout. Expiry is checked lazily here; nothing
// sweeps expired rows proactively.
type SessionManager struct {
	sessions ports.SessionRepository
	now      func() time.Time
}

func NewSessionManager(sessions ports.SessionRepository) *SessionManager {
	return &SessionManager{sessions: sessions, now: time.Now}
}

// Create opens a session for (accountID, userID) and returns the opaque
// refresh token. Any prior session for the pair is replaced: one active
// session per user.
func (m *SessionManager) Create(ctx context.Context, accountID, userID uuid.UUID) (string, error) {
	value, err := token.NewRefreshToken()
	if err != nil {
		return "", err
	}

	now := m.now().Unix()
	session := &domain.Session{
		TokenID:    uuid.New(),
		AccountID:  accountID,
		UserID:     userID,
		TokenValue: value,
		CreatedAt:  now,
		Expiry:     now + int64(domain.SessionTTL/time.Second),
	}

	if err := m.sessions.Replace(ctx, session); err != nil {
		return "", err
	}
	return value, nil
}

// Validate looks up the session by exact token match and checks its expiry.
func (m *SessionManager) Validate(ctx context.Context, tokenValue string) (*domain.Session, error) {
	session, err := m.sessions.FindByToken(ctx, tokenValue)
	if err != nil {
		return nil, err
	}
	if session.Expired(m.now()) {
		return nil, domain.ErrSessionExpired
	}
	return session, nil
}

// Revoke deletes the user's session rows. Revoking when no session exists
// is an error: a second logout must fail, not silently succeed.
func (m *SessionManager) Revoke(ctx context.Context, accountID, userID uuid.UUID) error {
	n, err := m.sessions.DeleteByUser(ctx, accountID, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}
