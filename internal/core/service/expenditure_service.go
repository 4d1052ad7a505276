package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/core/ports"
)

// ExpenditureService records expense transactions, creating expense types
// on the fly when an expenditure names one that does not exist yet.
type ExpenditureService struct {
	expenditures ports.ExpenditureRepository
	expenseTypes ports.ExpenseTypeRepository
	log          zerolog.Logger
}

func NewExpenditureService(expenditures ports.ExpenditureRepository, expenseTypes ports.ExpenseTypeRepository, log zerolog.Logger) *ExpenditureService {
	return &ExpenditureService{expenditures: expenditures, expenseTypes: expenseTypes, log: log}
}

func (s *ExpenditureService) List(ctx context.Context, caller domain.CallerIdentity) ([]domain.Expenditure, error) {
	expenditures, err := s.expenditures.List(ctx, caller.Scope())
	if err != nil {
		return nil, err
	}
	if len(expenditures) == 0 {
		return nil, domain.ErrExpenditureNotFound
	}
	return expenditures, nil
}

func (s *ExpenditureService) Add(ctx context.Context, caller domain.CallerIdentity, amount int64, expense string) (*domain.Expenditure, error) {
	expenseTypeID, err := s.resolveExpenseType(ctx, caller, expense)
	if err != nil {
		return nil, err
	}

	expenditure := &domain.Expenditure{
		AccountID:     caller.AccountID,
		AccountName:   caller.AccountName,
		UserID:        caller.UserID,
		UserName:      caller.UserName,
		ExpendID:      uuid.New(),
		Amount:        amount,
		ExpenseTypeID: expenseTypeID,
		Status:        true,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.expenditures.Create(ctx, expenditure); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("account_id", caller.AccountID.String()).
		Str("user_id", caller.UserID.String()).
		Str("expend_id", expenditure.ExpendID.String()).
		Msg("expenditure added")

	return expenditure, nil
}

func (s *ExpenditureService) Update(ctx context.Context, caller domain.CallerIdentity, expendID uuid.UUID, amount int64, expense string) (*domain.Expenditure, error) {
	expenditure, err := s.expenditures.FindByID(ctx, expendID)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(expenditure.AccountID, expenditure.UserID) {
		s.log.Warn().
			Str("account_id", caller.AccountID.String()).
			Str("user_id", caller.UserID.String()).
			Str("expend_id", expendID.String()).
			Msg("expenditure update denied")
		return nil, domain.ErrForbidden
	}

	expenseTypeID, err := s.resolveExpenseType(ctx, caller, expense)
	if err != nil {
		return nil, err
	}

	return s.expenditures.Update(ctx, expendID, amount, expenseTypeID)
}

// resolveExpenseType maps an expense name to its per-account id, inserting
// the type when absent. The find-or-create is atomic in the repository so
// two concurrent expenditures for a new name cannot both insert.
func (s *ExpenditureService) resolveExpenseType(ctx context.Context, caller domain.CallerIdentity, expense string) (uuid.UUID, error) {
	return s.expenseTypes.FindOrCreate(ctx, &domain.ExpenseType{
		AccountID:     caller.AccountID,
		AccountName:   caller.AccountName,
		UserID:        caller.UserID,
		UserName:      caller.UserName,
		ExpenseTypeID: uuid.New(),
		ExpenseType:   domain.NormalizeExpenseType(expense),
		CreatedAt:     time.Now().UTC(),
	})
}
