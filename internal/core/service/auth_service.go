package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/core/ports"
	"github.com/ledgerkeep/ledgerkeep/internal/core/token"
)

// AuthService implements login, refresh and logout on top of the session
// manager and token issuer.
type AuthService struct {
	accounts ports.AccountRepository
	users    ports.UserRepository
	sessions *SessionManager
	issuer   *token.Issuer
	throttle RefreshThrottle
	attempts ports.LoginThrottle
	audit    ports.AuditSink
	log      zerolog.Logger
}

func NewAuthService(
	accounts ports.AccountRepository,
	users ports.UserRepository,
	sessions *SessionManager,
	issuer *token.Issuer,
	throttle RefreshThrottle,
	attempts ports.LoginThrottle,
	audit ports.AuditSink,
	log zerolog.Logger,
) *AuthService {
	if throttle == nil {
		throttle = FixedDelayThrottle{Delay: DefaultRefreshDelay}
	}
	return &AuthService{
		accounts: accounts,
		users:    users,
		sessions: sessions,
		issuer:   issuer,
		throttle: throttle,
		attempts: attempts,
		audit:    audit,
		log:      log,
	}
}

// Login verifies the (account, user, password) triple and opens a refresh
// session. A deactivated account is indistinguishable from a missing one.
func (s *AuthService) Login(ctx context.Context, accountName, userName, password string) (string, error) {
	if accountName == "" || userName == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	blocked, err := s.attempts.Blocked(ctx, accountName, userName)
	if err != nil {
		// A throttle outage must not take logins down with it.
		s.log.Warn().Err(err).Msg("login throttle unavailable")
	} else if blocked {
		return "", domain.ErrTooManyAttempts
	}

	account, err := s.accounts.FindByName(ctx, accountName)
	if err != nil {
		return "", err
	}
	if !account.Status {
		return "", domain.ErrAccountNotFound
	}

	user, err := s.users.FindByName(ctx, account.AccountID, userName)
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		if err := s.attempts.RecordFailure(ctx, accountName, userName); err != nil {
			s.log.Warn().Err(err).Msg("login throttle record failed")
		}
		return "", domain.ErrInvalidCredentials
	}

	if err := s.attempts.Reset(ctx, accountName, userName); err != nil {
		s.log.Warn().Err(err).Msg("login throttle reset failed")
	}

	refreshToken, err := s.sessions.Create(ctx, user.AccountID, user.UserID)
	if err != nil {
		return "", err
	}

	s.audit.Record(domain.AuditEvent{
		AccountID: user.AccountID,
		UserID:    user.UserID,
		Action:    "login",
		Detail:    "user logged in",
		At:        time.Now().UTC(),
	})
	s.log.Info().
		Str("account_id", user.AccountID.String()).
		Str("user_id", user.UserID.String()).
		Msg("user logged in")

	return refreshToken, nil
}

// Refresh exchanges a valid refresh token for a new access token. Claims are
// re-derived from the stored user row, so role changes take effect on the
// next refresh even while older access tokens run out their TTL.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.RefreshedIdentity, error) {
	session, err := s.sessions.Validate(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, session.AccountID, session.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.throttle.Wait(ctx); err != nil {
		return nil, err
	}

	identity := user.Identity()
	accessToken, err := s.issuer.Issue(identity)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("account_id", user.AccountID.String()).
		Str("user_id", user.UserID.String()).
		Msg("access token refreshed")

	return &ports.RefreshedIdentity{AccessToken: accessToken, Identity: identity}, nil
}

// Logout revokes the caller's refresh session.
func (s *AuthService) Logout(ctx context.Context, caller domain.CallerIdentity) error {
	if err := s.sessions.Revoke(ctx, caller.AccountID, caller.UserID); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEvent{
		AccountID: caller.AccountID,
		UserID:    caller.UserID,
		Action:    "logout",
		Detail:    "user logged out",
		At:        time.Now().UTC(),
	})
	s.log.Info().
		Str("account_id", caller.AccountID.String()).
		Str("user_id", caller.UserID.String()).
		Msg("user logged out")

	return nil
}
