package ports

import (
	"context"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

// NewUserInput carries the fields needed to create a user inside an account.
type NewUserInput struct {
	UserName string
	Email    string
	Phone    string
	Password string
	Role     domain.Role
}

// AccountService is the tenant-scoped user management surface. Every
// operation requires an account_admin caller.
type AccountService interface {
	ListUsers(ctx context.Context, caller domain.CallerIdentity) ([]domain.User, error)
	CreateUser(ctx context.Context, caller domain.CallerIdentity, in NewUserInput) (*domain.User, error)
	// DeleteUser removes the named user and all their data.
	DeleteUser(ctx context.Context, caller domain.CallerIdentity, userName string) error
	// UpdateUserRole changes a user's role, refusing to demote the
	// account's last account_admin.
	UpdateUserRole(ctx context.Context, caller domain.CallerIdentity, userName string, role domain.Role) (*domain.User, error)
}
