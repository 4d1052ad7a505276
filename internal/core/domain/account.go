package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is the tenant: the unit of data isolation. Accounts are soft
// deleted (Status=false) and only removed for real by an explicit purge.
type Account struct {
	AccountID   uuid.UUID `json:"account_id"`
	AccountName string    `json:"account_name"`
	Status      bool      `json:"status"`
	CreatedAt   time.Time `json:"timestamp"`
}

// ValidateAccountName enforces the account-name charset: first character a
// lowercase letter, the rest alphanumeric, no spaces. The name is immutable
// after creation so this only runs once.
func ValidateAccountName(name string) error {
	if name == "" {
		return ErrInvalidAccountName
	}
	first := name[0]
	if first < 'a' || first > 'z' {
		return ErrInvalidAccountName
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			continue
		}
		return ErrInvalidAccountName
	}
	return nil
}

// ValidatePhone rejects phone numbers containing anything but digits.
func ValidatePhone(phone string) error {
	if phone == "" {
		return ErrInvalidPhone
	}
	for i := 0; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return ErrInvalidPhone
		}
	}
	return nil
}
