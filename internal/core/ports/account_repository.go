package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

// AccountRepository persists tenant accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	FindByName(ctx context.Context, accountName string) (*domain.Account, error)
	FindByID(ctx context.Context, accountID uuid.UUID) (*domain.Account, error)
	// SetStatus soft-deletes (or restores) an account.
	SetStatus(ctx context.Context, accountID uuid.UUID, status bool) error
	// Purge hard-deletes the account together with its users, sessions,
	// incomes, expenditures and expense types in a single transaction.
	Purge(ctx context.Context, accountID uuid.UUID) error
	ListAll(ctx context.Context) ([]domain.Account, error)
}
