package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/core/ports"
)

// AccountService manages users within the caller's own account. All
// operations are account_admin only and never cross the tenant boundary.
type AccountService struct {
	accounts ports.AccountRepository
	users    ports.UserRepository
	audit    ports.AuditSink
	log      zerolog.Logger
}

func NewAccountService(accounts ports.AccountRepository, users ports.UserRepository, audit ports.AuditSink, log zerolog.Logger) *AccountService {
	return &AccountService{accounts: accounts, users: users, audit: audit, log: log}
}

// requireAdmin rejects callers that are not account_admins. An unknown role
// is its own error rather than a plain denial.
func requireAdmin(caller domain.CallerIdentity) error {
	ok, err := domain.HasRole(caller.Role, domain.RoleAccountAdmin)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}

func (s *AccountService) ListUsers(ctx context.Context, caller domain.CallerIdentity) ([]domain.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return s.users.ListByAccount(ctx, caller.AccountID)
}

func (s *AccountService) CreateUser(ctx context.Context, caller domain.CallerIdentity, in ports.NewUserInput) (*domain.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if !in.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	if err := domain.ValidatePhone(in.Phone); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.FindByID(ctx, caller.AccountID)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		AccountID:   account.AccountID,
		AccountName: account.AccountName,
		UserID:      uuid.New(),
		UserName:    in.UserName,
		Email:       in.Email,
		Phone:       in.Phone,
		Password:    string(hash),
		Role:        in.Role,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEvent{
		AccountID: caller.AccountID,
		UserID:    caller.UserID,
		Action:    "user_created",
		Detail:    "added user " + user.UserName,
		At:        time.Now().UTC(),
	})

	return user, nil
}

// DeleteUser removes the named user from the caller's account along with
// every row they own. The cascade runs in one transaction, so a failure
// leaves everything in place.
func (s *AccountService) DeleteUser(ctx context.Context, caller domain.CallerIdentity, userName string) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	user, err := s.users.FindByName(ctx, caller.AccountID, userName)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, user.AccountID, user.UserID); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEvent{
		AccountID: caller.AccountID,
		UserID:    caller.UserID,
		Action:    "user_deleted",
		Detail:    "removed user " + userName,
		At:        time.Now().UTC(),
	})

	return nil
}

// UpdateUserRole changes a user's role. An account_admin demoting themself
// to user must not leave the account admin-less: the change is refused
// unless another account_admin exists.
func (s *AccountService) UpdateUserRole(ctx context.Context, caller domain.CallerIdentity, userName string, role domain.Role) (*domain.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	if userName == caller.UserName && role == domain.RoleUser {
		other, err := s.users.OtherAdminExists(ctx, caller.AccountID, caller.UserID)
		if err != nil {
			return nil, err
		}
		if !other {
			return nil, domain.ErrLastAdmin
		}
	}

	user, err := s.users.UpdateRole(ctx, caller.AccountID, userName, role)
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEvent{
		AccountID: caller.AccountID,
		UserID:    caller.UserID,
		Action:    "role_updated",
		Detail:    "set role of " + userName + " to " + string(role),
		At:        time.Now().UTC(),
	})

	return user, nil
}
