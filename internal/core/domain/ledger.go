package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Income is a recorded income transaction.
type Income struct {
	AccountID   uuid.UUID `json:"account_id"`
	AccountName string    `json:"account_name"`
	UserID      uuid.UUID `json:"user_id"`
	UserName    string    `json:"user_name"`
	TransID     uuid.UUID `json:"trans_id"`
	Amount      int64     `json:"amount"`
	Method      string    `json:"method"`
	Status      bool      `json:"status"`
	CreatedAt   time.Time `json:"timestamp"`
}

// Expenditure is a recorded expense transaction, classified by a per-account
// expense type.
type Expenditure struct {
	AccountID     uuid.UUID `json:"account_id"`
	AccountName   string    `json:"account_name"`
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	ExpendID      uuid.UUID `json:"expend_id"`
	Amount        int64     `json:"amount"`
	ExpenseTypeID uuid.UUID `json:"expense_type_id"`
	Status        bool      `json:"status"`
	CreatedAt     time.Time `json:"timestamp"`
}

// ExpenseType is an expense classification. Names are stored normalized and
// are unique per account.
type ExpenseType struct {
	AccountID     uuid.UUID `json:"account_id"`
	AccountName   string    `json:"account_name"`
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	ExpenseTypeID uuid.UUID `json:"expense_type_id"`
	ExpenseType   string    `json:"expense_type"`
	CreatedAt     time.Time `json:"timestamp"`
}

// NormalizeExpenseType canonicalizes an expense-type name: upper-cased with
// every space removed, so "Travel Food" and "travel   food" collide.
func NormalizeExpenseType(name string) string {
	return strings.ReplaceAll(strings.ToUpper(name), " ", "")
}
