package ports

import (
	"context"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

// RefreshedIdentity is the result of exchanging a refresh token: a freshly
// issued access token plus the claims that were signed into it.
type RefreshedIdentity struct {
	AccessToken string
	Identity    domain.CallerIdentity
}

// AuthService implements login, refresh-token exchange and logout.
type AuthService interface {
	// Login verifies credentials and opens a refresh session, returning
	// the opaque refresh token.
	Login(ctx context.Context, accountName, userName, password string) (string, error)
	// Refresh exchanges a valid refresh token for a new access token with
	// claims re-derived from the stored user row.
	Refresh(ctx context.Context, refreshToken string) (*RefreshedIdentity, error)
	// Logout revokes the caller's refresh session. Logging out with no
	// active session is an error, not a no-op.
	Logout(ctx context.Context, caller domain.CallerIdentity) error
}
