package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

// IncomeService records and lists income transactions. Listing is scoped to
// the caller's visibility and to the current day.
type IncomeService interface {
	List(ctx context.Context, caller domain.CallerIdentity) ([]domain.Income, error)
	Add(ctx context.Context, caller domain.CallerIdentity, amount int64, method string) (*domain.Income, error)
	Update(ctx context.Context, caller domain.CallerIdentity, transID uuid.UUID, amount int64) (*domain.Income, error)
}

// ExpenditureService records and lists expense transactions. Adding an
// expenditure creates its expense type on the fly when absent.
type ExpenditureService interface {
	List(ctx context.Context, caller domain.CallerIdentity) ([]domain.Expenditure, error)
	Add(ctx context.Context, caller domain.CallerIdentity, amount int64, expense string) (*domain.Expenditure, error)
	Update(ctx context.Context, caller domain.CallerIdentity, expendID uuid.UUID, amount int64, expense string) (*domain.Expenditure, error)
}

// ExpenseTypeService manages per-account expense classifications.
type ExpenseTypeService interface {
	List(ctx context.Context, caller domain.CallerIdentity) ([]domain.ExpenseType, error)
	Add(ctx context.Context, caller domain.CallerIdentity, name string) (*domain.ExpenseType, error)
	Update(ctx context.Context, caller domain.CallerIdentity, expenseTypeID uuid.UUID, name string) (*domain.ExpenseType, error)
}
