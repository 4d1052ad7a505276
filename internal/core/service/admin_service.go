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

// AdminService implements the super-admin surface. Callers are authenticated
// by the shared service token, not by a tenant identity, so nothing here is
// scoped to an account.
type AdminService struct {
	accounts     ports.AccountRepository
	users        ports.UserRepository
	incomes      ports.IncomeRepository
	expenditures ports.ExpenditureRepository
	expenseTypes ports.ExpenseTypeRepository
	audit        ports.AuditSink
	log          zerolog.Logger
}

func NewAdminService(
	accounts ports.AccountRepository,
	users ports.UserRepository,
	incomes ports.IncomeRepository,
	expenditures ports.ExpenditureRepository,
	expenseTypes ports.ExpenseTypeRepository,
	audit ports.AuditSink,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{
		accounts:     accounts,
		users:        users,
		incomes:      incomes,
		expenditures: expenditures,
		expenseTypes: expenseTypes,
		audit:        audit,
		log:          log,
	}
}

// CreateAccount bootstraps a tenant: the account row plus its first user,
// who is always the account_admin. If the user insert collides with an
// existing user name the fresh account is removed again rather than left
// admin-less.
func (s *AdminService) CreateAccount(ctx context.Context, in ports.NewAccountInput) (*domain.User, error) {
	if err := domain.ValidateAccountName(in.AccountName); err != nil {
		return nil, err
	}
	if err := domain.ValidatePhone(in.Phone); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		AccountID:   uuid.New(),
		AccountName: in.AccountName,
		Status:      true,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	admin := &domain.User{
		AccountID:   account.AccountID,
		AccountName: account.AccountName,
		UserID:      uuid.New(),
		UserName:    in.UserName,
		Email:       in.Email,
		Phone:       in.Phone,
		Password:    string(hash),
		Role:        domain.RoleAccountAdmin,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.users.Create(ctx, admin); err != nil {
		if purgeErr := s.accounts.Purge(ctx, account.AccountID); purgeErr != nil {
			s.log.Error().Err(purgeErr).
				Str("account_id", account.AccountID.String()).
				Msg("rollback of half-created account failed")
		}
		return nil, err
	}

	s.audit.Record(domain.AuditEvent{
		Action: "account_created",
		Detail: "created account " + in.AccountName,
		At:     time.Now().UTC(),
	})
	s.log.Info().Str("account_id", account.AccountID.String()).Msg("account created")

	return admin, nil
}

// DeactivateAccount soft-deletes: the account row stays, login is refused.
func (s *AdminService) DeactivateAccount(ctx context.Context, accountName string) error {
	account, err := s.accounts.FindByName(ctx, accountName)
	if err != nil {
		return err
	}
	if err := s.accounts.SetStatus(ctx, account.AccountID, false); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEvent{
		Action: "account_deactivated",
		Detail: "deactivated account " + accountName,
		At:     time.Now().UTC(),
	})
	return nil
}

// PurgeAccount hard-deletes the account and every row belonging to it in a
// single transaction.
func (s *AdminService) PurgeAccount(ctx context.Context, accountName string) error {
	account, err := s.accounts.FindByName(ctx, accountName)
	if err != nil {
		return err
	}
	if err := s.accounts.Purge(ctx, account.AccountID); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEvent{
		Action: "account_purged",
		Detail: "purged account " + accountName,
		At:     time.Now().UTC(),
	})
	s.log.Info().Str("account_id", account.AccountID.String()).Msg("account purged")
	return nil
}

func (s *AdminService) DeleteUser(ctx context.Context, accountName, userName string) error {
	account, err := s.accounts.FindByName(ctx, accountName)
	if err != nil {
		return err
	}
	user, err := s.users.FindByName(ctx, account.AccountID, userName)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, user.AccountID, user.UserID); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEvent{
		Action: "user_deleted",
		Detail: "deleted user " + userName + " of account " + accountName,
		At:     time.Now().UTC(),
	})
	return nil
}

// UpdateUserRole is the super-admin override; unlike the tenant flow it can
// demote the last account_admin.
func (s *AdminService) UpdateUserRole(ctx context.Context, accountName, userName string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	account, err := s.accounts.FindByName(ctx, accountName)
	if err != nil {
		return nil, err
	}
	return s.users.UpdateRole(ctx, account.AccountID, userName, role)
}

func (s *AdminService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accounts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, domain.ErrAccountNotFound
	}
	return accounts, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return users, nil
}

func (s *AdminService) ListIncomes(ctx context.Context) ([]domain.Income, error) {
	incomes, err := s.incomes.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(incomes) == 0 {
		return nil, domain.ErrIncomeNotFound
	}
	return incomes, nil
}

func (s *AdminService) ListExpenditures(ctx context.Context) ([]domain.Expenditure, error) {
	expenditures, err := s.expenditures.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(expenditures) == 0 {
		return nil, domain.ErrExpenditureNotFound
	}
	return expenditures, nil
}

func (s *AdminService) ListExpenseTypes(ctx context.Context) ([]domain.ExpenseType, error) {
	expenseTypes, err := s.expenseTypes.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(expenseTypes) == 0 {
		return nil, domain.ErrExpenseTypeNotFound
	}
	return expenseTypes, nil
}
