package domain

import "github.com/google/uuid"

// CallerIdentity is the claims payload decoded from a verified access token.
// It exists only for the lifetime of a request and is never persisted.
type CallerIdentity struct {
	AccountID   uuid.UUID `json:"account_id"`
	AccountName string    `json:"account_name"`
	UserID      uuid.UUID `json:"user_id"`
	UserName    string    `json:"user_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Role        Role      `json:"role"`
}

// CanAccess decides whether the caller may read or mutate a row owned by
// (ownerAccountID, ownerUserID). An account_admin reaches any row in their
// own account; a user only their own rows. Cross-account access is denied
// for every role.
func (c CallerIdentity) CanAccess(ownerAccountID, ownerUserID uuid.UUID) bool {
	if c.AccountID != ownerAccountID {
		return false
	}
	if c.Role == RoleAccountAdmin {
		return true
	}
	return c.UserID == ownerUserID
}

// Visibility is the read-side scope applied when listing a collection.
// UserID is nil for account-wide visibility.
type Visibility struct {
	AccountID uuid.UUID
	UserID    *uuid.UUID
}

// Scope returns the listing visibility for the caller: account_admins see
// the whole account, users only rows they own.
func (c CallerIdentity) Scope() Visibility {
	if c.Role == RoleAccountAdmin {
		return Visibility{AccountID: c.AccountID}
	}
	uid := c.UserID
	return Visibility{AccountID: c.AccountID, UserID: &uid}
}
