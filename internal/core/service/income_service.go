package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/core/ports"
)

// IncomeService records income transactions.
type IncomeService struct {
	incomes ports.IncomeRepository
	log     zerolog.Logger
}

func NewIncomeService(incomes ports.IncomeRepository, log zerolog.Logger) *IncomeService {
	return &IncomeService{incomes: incomes, log: log}
}

// List returns the caller's visible incomes for the current day. Users see
// their own rows, account_admins the whole account. An empty day is
// reported as not found.
func (s *IncomeService) List(ctx context.Context, caller domain.CallerIdentity) ([]domain.Income, error) {
	incomes, err := s.incomes.ListForDay(ctx, caller.Scope(), time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if len(incomes) == 0 {
		return nil, domain.ErrIncomeNotFound
	}
	return incomes, nil
}

func (s *IncomeService) Add(ctx context.Context, caller domain.CallerIdentity, amount int64, method string) (*domain.Income, error) {
	income := &domain.Income{
		AccountID:   caller.AccountID,
		AccountName: caller.AccountName,
		UserID:      caller.UserID,
		UserName:    caller.UserName,
		TransID:     uuid.New(),
		Amount:      amount,
		Method:      method,
		Status:      true,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.incomes.Create(ctx, income); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("account_id", caller.AccountID.String()).
		Str("user_id", caller.UserID.String()).
		Str("trans_id", income.TransID.String()).
		Msg("income added")

	return income, nil
}

// Update corrects the amount of an existing income. The ownership check
// runs against the stored row, not the request.
func (s *IncomeService) Update(ctx context.Context, caller domain.CallerIdentity, transID uuid.UUID, amount int64) (*domain.Income, error) {
	income, err := s.incomes.FindByID(ctx, transID)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(income.AccountID, income.UserID) {
		s.log.Warn().
			Str("account_id", caller.AccountID.String()).
			Str("user_id", caller.UserID.String()).
			Str("trans_id", transID.String()).
			Msg("income update denied")
		return nil, domain.ErrForbidden
	}

	return s.incomes.UpdateAmount(ctx, transID, amount)
}
