package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

// In-memory fakes for the repository ports. They mirror the store's
// uniqueness rules closely enough for the service-level tests.

type stubAccountRepo struct {
	accounts map[uuid.UUID]*domain.Account
	purged   []uuid.UUID
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[uuid.UUID]*domain.Account)}
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) error {
	for _, a := range r.accounts {
		if a.AccountName == account.AccountName {
			return domain.ErrAccountExists
		}
	}
	clone := *account
	r.accounts[account.AccountID] = &clone
	return nil
}

func (r *stubAccountRepo) FindByName(_ context.Context, accountName string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.AccountName == accountName {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, accountID uuid.UUID) (*domain.Account, error) {
	a, ok := r.accounts[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAccountRepo) SetStatus(_ context.Context, accountID uuid.UUID, status bool) error {
	a, ok := r.accounts[accountID]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.Status = status
	return nil
}

func (r *stubAccountRepo) Purge(_ context.Context, accountID uuid.UUID) error {
	if _, ok := r.accounts[accountID]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.accounts, accountID)
	r.purged = append(r.purged, accountID)
	return nil
}

func (r *stubAccountRepo) ListAll(_ context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, *a)
	}
	return out, nil
}

type stubUserRepo struct {
	users   map[uuid.UUID]*domain.User
	deleted []uuid.UUID
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.UserName == user.UserName {
			return domain.ErrUserExists
		}
		if u.AccountID == user.AccountID && u.Email == user.Email {
			return domain.ErrUserExists
		}
	}
	clone := *user
	r.users[user.UserID] = &clone
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, accountID, userID uuid.UUID) (*domain.User, error) {
	u, ok := r.users[userID]
	if !ok || u.AccountID != accountID {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByName(_ context.Context, accountID uuid.UUID, userName string) (*domain.User, error) {
	for _, u := range r.users {
		if u.AccountID == accountID && u.UserName == userName {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateRole(_ context.Context, accountID uuid.UUID, userName string, role domain.Role) (*domain.User, error) {
	for _, u := range r.users {
		if u.AccountID == accountID && u.UserName == userName {
			u.Role = role
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) OtherAdminExists(_ context.Context, accountID, excludeUserID uuid.UUID) (bool, error) {
	for _, u := range r.users {
		if u.AccountID == accountID && u.UserID != excludeUserID && u.Role == domain.RoleAccountAdmin {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Delete(_ context.Context, accountID, userID uuid.UUID) error {
	u, ok := r.users[userID]
	if !ok || u.AccountID != accountID {
		return domain.ErrUserNotFound
	}
	delete(r.users, userID)
	r.deleted = append(r.deleted, userID)
	return nil
}

func (r *stubUserRepo) ListByAccount(_ context.Context, accountID uuid.UUID) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		if u.AccountID == accountID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) ListAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

type stubSessionRepo struct {
	sessions map[string]*domain.Session
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *stubSessionRepo) Replace(_ context.Context, session *domain.Session) error {
	for value, s := range r.sessions {
		if s.AccountID == session.AccountID && s.UserID == session.UserID {
			delete(r.sessions, value)
		}
	}
	clone := *session
	r.sessions[session.TokenValue] = &clone
	return nil
}

func (r *stubSessionRepo) FindByToken(_ context.Context, tokenValue string) (*domain.Session, error) {
	s, ok := r.sessions[tokenValue]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSessionRepo) DeleteByUser(_ context.Context, accountID, userID uuid.UUID) (int64, error) {
	var n int64
	for value, s := range r.sessions {
		if s.AccountID == accountID && s.UserID == userID {
			delete(r.sessions, value)
			n++
		}
	}
	return n, nil
}

type stubIncomeRepo struct {
	incomes map[uuid.UUID]*domain.Income
}

func newStubIncomeRepo() *stubIncomeRepo {
	return &stubIncomeRepo{incomes: make(map[uuid.UUID]*domain.Income)}
}

func (r *stubIncomeRepo) Create(_ context.Context, income *domain.Income) error {
	clone := *income
	r.incomes[income.TransID] = &clone
	return nil
}

func (r *stubIncomeRepo) FindByID(_ context.Context, transID uuid.UUID) (*domain.Income, error) {
	i, ok := r.incomes[transID]
	if !ok {
		return nil, domain.ErrIncomeNotFound
	}
	clone := *i
	return &clone, nil
}

func (r *stubIncomeRepo) UpdateAmount(_ context.Context, transID uuid.UUID, amount int64) (*domain.Income, error) {
	i, ok := r.incomes[transID]
	if !ok {
		return nil, domain.ErrIncomeNotFound
	}
	i.Amount = amount
	clone := *i
	return &clone, nil
}

func (r *stubIncomeRepo) ListForDay(_ context.Context, vis domain.Visibility, day time.Time) ([]domain.Income, error) {
	var out []domain.Income
	for _, i := range r.incomes {
		if i.AccountID != vis.AccountID {
			continue
		}
		if vis.UserID != nil && i.UserID != *vis.UserID {
			continue
		}
		if i.CreatedAt.UTC().Truncate(24*time.Hour) != day.Truncate(24*time.Hour) {
			continue
		}
		out = append(out, *i)
	}
	return out, nil
}

func (r *stubIncomeRepo) ListAll(_ context.Context) ([]domain.Income, error) {
	out := make([]domain.Income, 0, len(r.incomes))
	for _, i := range r.incomes {
		out = append(out, *i)
	}
	return out, nil
}

type stubExpenditureRepo struct {
	expenditures map[uuid.UUID]*domain.Expenditure
}

func newStubExpenditureRepo() *stubExpenditureRepo {
	return &stubExpenditureRepo{expenditures: make(map[uuid.UUID]*domain.Expenditure)}
}

func (r *stubExpenditureRepo) Create(_ context.Context, expend *domain.Expenditure) error {
	clone := *expend
	r.expenditures[expend.ExpendID] = &clone
	return nil
}

func (r *stubExpenditureRepo) FindByID(_ context.Context, expendID uuid.UUID) (*domain.Expenditure, error) {
	e, ok := r.expenditures[expendID]
	if !ok {
		return nil, domain.ErrExpenditureNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubExpenditureRepo) Update(_ context.Context, expendID uuid.UUID, amount int64, expenseTypeID uuid.UUID) (*domain.Expenditure, error) {
	e, ok := r.expenditures[expendID]
	if !ok {
		return nil, domain.ErrExpenditureNotFound
	}
	e.Amount = amount
	e.ExpenseTypeID = expenseTypeID
	clone := *e
	return &clone, nil
}

func (r *stubExpenditureRepo) List(_ context.Context, vis domain.Visibility) ([]domain.Expenditure, error) {
	var out []domain.Expenditure
	for _, e := range r.expenditures {
		if e.AccountID != vis.AccountID {
			continue
		}
		if vis.UserID != nil && e.UserID != *vis.UserID {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubExpenditureRepo) ListAll(_ context.Context) ([]domain.Expenditure, error) {
	out := make([]domain.Expenditure, 0, len(r.expenditures))
	for _, e := range r.expenditures {
		out = append(out, *e)
	}
	return out, nil
}

type stubExpenseTypeRepo struct {
	types map[uuid.UUID]*domain.ExpenseType
}

func newStubExpenseTypeRepo() *stubExpenseTypeRepo {
	return &stubExpenseTypeRepo{types: make(map[uuid.UUID]*domain.ExpenseType)}
}

func (r *stubExpenseTypeRepo) Create(_ context.Context, et *domain.ExpenseType) error {
	for _, existing := range r.types {
		if existing.AccountID == et.AccountID && existing.ExpenseType == et.ExpenseType {
			return domain.ErrExpenseTypeExists
		}
	}
	clone := *et
	r.types[et.ExpenseTypeID] = &clone
	return nil
}

func (r *stubExpenseTypeRepo) FindByID(_ context.Context, expenseTypeID uuid.UUID) (*domain.ExpenseType, error) {
	et, ok := r.types[expenseTypeID]
	if !ok {
		return nil, domain.ErrExpenseTypeNotFound
	}
	clone := *et
	return &clone, nil
}

func (r *stubExpenseTypeRepo) FindOrCreate(_ context.Context, et *domain.ExpenseType) (uuid.UUID, error) {
	for _, existing := range r.types {
		if existing.AccountID == et.AccountID && existing.ExpenseType == et.ExpenseType {
			return existing.ExpenseTypeID, nil
		}
	}
	clone := *et
	r.types[et.ExpenseTypeID] = &clone
	return et.ExpenseTypeID, nil
}

func (r *stubExpenseTypeRepo) Update(_ context.Context, expenseTypeID uuid.UUID, name string) (*domain.ExpenseType, error) {
	et, ok := r.types[expenseTypeID]
	if !ok {
		return nil, domain.ErrExpenseTypeNotFound
	}
	et.ExpenseType = name
	clone := *et
	return &clone, nil
}

func (r *stubExpenseTypeRepo) List(_ context.Context, vis domain.Visibility) ([]domain.ExpenseType, error) {
	var out []domain.ExpenseType
	for _, et := range r.types {
		if et.AccountID != vis.AccountID {
			continue
		}
		if vis.UserID != nil && et.UserID != *vis.UserID {
			continue
		}
		out = append(out, *et)
	}
	return out, nil
}

func (r *stubExpenseTypeRepo) ListAll(_ context.Context) ([]domain.ExpenseType, error) {
	out := make([]domain.ExpenseType, 0, len(r.types))
	for _, et := range r.types {
		out = append(out, *et)
	}
	return out, nil
}

// recordingAudit captures audit events synchronously.
type recordingAudit struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (a *recordingAudit) Record(event domain.AuditEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, event)
}

func (a *recordingAudit) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.events))
	for _, e := range a.events {
		out = append(out, e.Action)
	}
	return out
}

// blockedThrottle always reports the principal as locked out.
type blockedThrottle struct{}

func (blockedThrottle) Blocked(context.Context, string, string) (bool, error) { return true, nil }
func (blockedThrottle) RecordFailure(context.Context, string, string) error   { return nil }
func (blockedThrottle) Reset(context.Context, string, string) error           { return nil }

// countingThrottle records failures and resets without ever blocking.
type countingThrottle struct {
	failures int
	resets   int
}

func (t *countingThrottle) Blocked(context.Context, string, string) (bool, error) { return false, nil }
func (t *countingThrottle) RecordFailure(context.Context, string, string) error {
	t.failures++
	return nil
}
func (t *countingThrottle) Reset(context.Context, string, string) error {
	t.resets++
	return nil
}
