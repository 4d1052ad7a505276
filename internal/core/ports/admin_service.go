package ports

import (
	"context"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

// NewAccountInput bootstraps an account together with its first user, who
// always becomes the account_admin.
type NewAccountInput struct {
	AccountName string
	UserName    string
	Email       string
	Phone       string
	Password    string
}

// AdminService is the super-admin surface, gated by the shared service
// token rather than a tenant identity. It operates across all accounts.
type AdminService interface {
	CreateAccount(ctx context.Context, in NewAccountInput) (*domain.User, error)
	// DeactivateAccount soft-deletes (status=false).
	DeactivateAccount(ctx context.Context, accountName string) error
	// PurgeAccount hard-deletes the account and everything in it.
	PurgeAccount(ctx context.Context, accountName string) error
	DeleteUser(ctx context.Context, accountName, userName string) error
	// UpdateUserRole is a super-admin override: no last-admin guard.
	UpdateUserRole(ctx context.Context, accountName, userName string, role domain.Role) (*domain.User, error)

	ListAccounts(ctx context.Context) ([]domain.Account, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListIncomes(ctx context.Context) ([]domain.Income, error)
	ListExpenditures(ctx context.Context) ([]domain.Expenditure, error)
	ListExpenseTypes(ctx context.Context) ([]domain.ExpenseType, error)
}
