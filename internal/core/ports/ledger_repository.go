package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

// IncomeRepository persists income transactions.
type IncomeRepository interface {
	Create(ctx context.Context, income *domain.Income) error
	FindByID(ctx context.Context, transID uuid.UUID) (*domain.Income, error)
	UpdateAmount(ctx context.Context, transID uuid.UUID, amount int64) (*domain.Income, error)
	// ListForDay returns the visible incomes recorded on the given day.
	ListForDay(ctx context.Context, vis domain.Visibility, day time.Time) ([]domain.Income, error)
	ListAll(ctx context.Context) ([]domain.Income, error)
}

// ExpenditureRepository persists expense transactions.
type ExpenditureRepository interface {
	Create(ctx context.Context, expend *domain.Expenditure) error
	FindByID(ctx context.Context, expendID uuid.UUID) (*domain.Expenditure, error)
	Update(ctx context.Context, expendID uuid.UUID, amount int64, expenseTypeID uuid.UUID) (*domain.Expenditure, error)
	List(ctx context.Context, vis domain.Visibility) ([]domain.Expenditure, error)
	ListAll(ctx context.Context) ([]domain.Expenditure, error)
}

// ExpenseTypeRepository persists per-account expense classifications.
// Names are stored normalized and unique per account.
type ExpenseTypeRepository interface {
	Create(ctx context.Context, et *domain.ExpenseType) error
	FindByID(ctx context.Context, expenseTypeID uuid.UUID) (*domain.ExpenseType, error)
	// FindOrCreate returns the id of the expense type with the given
	// normalized name, inserting it first if absent. The lookup and insert
	// are a single atomic upsert so concurrent calls cannot both insert.
	FindOrCreate(ctx context.Context, et *domain.ExpenseType) (uuid.UUID, error)
	Update(ctx context.Context, expenseTypeID uuid.UUID, name string) (*domain.ExpenseType, error)
	List(ctx context.Context, vis domain.Visibility) ([]domain.ExpenseType, error)
	ListAll(ctx context.Context) ([]domain.ExpenseType, error)
}
