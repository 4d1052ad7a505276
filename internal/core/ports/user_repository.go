package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

// UserRepository persists account users. User names are unique across the
// whole system; (account, email) is unique within an account.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, accountID, userID uuid.UUID) (*domain.User, error)
	// FindByName looks up a user by name within one account.
	FindByName(ctx context.Context, accountID uuid.UUID, userName string) (*domain.User, error)
	UpdateRole(ctx context.Context, accountID uuid.UUID, userName string, role domain.Role) (*domain.User, error)
	// OtherAdminExists reports whether the account has an account_admin
	// other than excludeUserID. Backs the last-admin guard.
	OtherAdminExists(ctx context.Context, accountID, excludeUserID uuid.UUID) (bool, error)
	// Delete removes the user and cascades their incomes, expenditures,
	// expense types and sessions in a single transaction.
	Delete(ctx context.Context, accountID, userID uuid.UUID) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
}
