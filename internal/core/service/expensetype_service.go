package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/core/ports"
)

// ExpenseTypeService manages per-account expense classifications.
type ExpenseTypeService struct {
	expenseTypes ports.ExpenseTypeRepository
	log          zerolog.Logger
}

func NewExpenseTypeService(expenseTypes ports.ExpenseTypeRepository, log zerolog.Logger) *ExpenseTypeService {
	return &ExpenseTypeService{expenseTypes: expenseTypes, log: log}
}

func (s *ExpenseTypeService) List(ctx context.Context, caller domain.CallerIdentity) ([]domain.ExpenseType, error) {
	expenseTypes, err := s.expenseTypes.List(ctx, caller.Scope())
	if err != nil {
		return nil, err
	}
	if len(expenseTypes) == 0 {
		return nil, domain.ErrExpenseTypeNotFound
	}
	return expenseTypes, nil
}

// Add creates an expense type under the normalized name. A second type
// normalizing to the same name in the same account is a conflict.
func (s *ExpenseTypeService) Add(ctx context.Context, caller domain.CallerIdentity, name string) (*domain.ExpenseType, error) {
	expenseType := &domain.ExpenseType{
		AccountID:     caller.AccountID,
		AccountName:   caller.AccountName,
		UserID:        caller.UserID,
		UserName:      caller.UserName,
		ExpenseTypeID: uuid.New(),
		ExpenseType:   domain.NormalizeExpenseType(name),
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.expenseTypes.Create(ctx, expenseType); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("account_id", caller.AccountID.String()).
		Str("user_id", caller.UserID.String()).
		Str("expense_type", expenseType.ExpenseType).
		Msg("expense type added")

	return expenseType, nil
}

func (s *ExpenseTypeService) Update(ctx context.Context, caller domain.CallerIdentity, expenseTypeID uuid.UUID, name string) (*domain.ExpenseType, error) {
	expenseType, err := s.expenseTypes.FindByID(ctx, expenseTypeID)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(expenseType.AccountID, expenseType.UserID) {
		s.log.Warn().
			Str("account_id", caller.AccountID.String()).
			Str("user_id", caller.UserID.String()).
			Str("expense_type_id", expenseTypeID.String()).
			Msg("expense type update denied")
		return nil, domain.ErrForbidden
	}

	return s.expenseTypes.Update(ctx, expenseTypeID, domain.NormalizeExpenseType(name))
}
