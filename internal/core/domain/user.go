package domain

import (
	"time"

	"github.com/google/uuid"
)

// User belongs to exactly one account. Deleting a user cascades to their
// incomes, expenditures, expense types and sessions.
type User struct {
	AccountID   uuid.UUID `json:"account_id"`
	AccountName string    `json:"account_name"`
	UserID      uuid.UUID `json:"user_id"`
	UserName    string    `json:"user_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Password    string    `json:"-"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"timestamp"`
}

// Identity derives the claims payload embedded in access tokens issued for
// this user. Claims are always re-derived from the stored row at refresh
// time, never copied from an older token.
func (u User) Identity() CallerIdentity {
	return CallerIdentity{
		AccountID:   u.AccountID,
		AccountName: u.AccountName,
		UserID:      u.UserID,
		UserName:    u.UserName,
		Email:       u.Email,
		Phone:       u.Phone,
		Role:        u.Role,
	}
}
