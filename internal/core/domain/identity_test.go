package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestCanAccess(t *testing.T) {
	accountID := uuid.New()
	ownerID := uuid.New()
	otherUserID := uuid.New()

	user := CallerIdentity{AccountID: accountID, UserID: ownerID, Role: RoleUser}
	admin := CallerIdentity{AccountID: accountID, UserID: otherUserID, Role: RoleAccountAdmin}
	foreignAdmin := CallerIdentity{AccountID: uuid.New(), UserID: uuid.New(), Role: RoleAccountAdmin}

	if !user.CanAccess(accountID, ownerID) {
		t.Fatalf("owner denied access to own row")
	}
	if user.CanAccess(accountID, otherUserID) {
		t.Fatalf("user reached another user's row")
	}
	if !admin.CanAccess(accountID, ownerID) {
		t.Fatalf("admin denied access within own account")
	}
	if foreignAdmin.CanAccess(accountID, ownerID) {
		t.Fatalf("admin crossed the account boundary")
	}
}

func TestScope(t *testing.T) {
	accountID := uuid.New()
	userID := uuid.New()

	admin := CallerIdentity{AccountID: accountID, UserID: userID, Role: RoleAccountAdmin}
	if vis := admin.Scope(); vis.AccountID != accountID || vis.UserID != nil {
		t.Fatalf("admin scope should be account-wide: %+v", vis)
	}

	user := CallerIdentity{AccountID: accountID, UserID: userID, Role: RoleUser}
	vis := user.Scope()
	if vis.AccountID != accountID || vis.UserID == nil || *vis.UserID != userID {
		t.Fatalf("user scope should be self only: %+v", vis)
	}
}

func TestHasRole(t *testing.T) {
	ok, err := HasRole(RoleAccountAdmin, RoleAccountAdmin)
	if err != nil || !ok {
		t.Fatalf("admin vs admin = %v, %v", ok, err)
	}
	ok, err = HasRole(RoleUser, RoleAccountAdmin)
	if err != nil || ok {
		t.Fatalf("user vs admin = %v, %v", ok, err)
	}
	if _, err := HasRole("superuser", RoleAccountAdmin); err != ErrInvalidRole {
		t.Fatalf("unknown caller role: %v", err)
	}
	if _, err := HasRole(RoleUser, "root"); err != ErrInvalidRole {
		t.Fatalf("unknown required role: %v", err)
	}
}
