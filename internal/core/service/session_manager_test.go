package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/core/token"
)

func TestSessionManager_CreateAndValidate(t *testing.T) {
	repo := newStubSessionRepo()
	mgr := NewSessionManager(repo)

	accountID, userID := uuid.New(), uuid.New()
	value, err := mgr.Create(context.Background(), accountID, userID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(value) != token.RefreshTokenLength {
		t.Fatalf("token length = %d, want %d", len(value), token.RefreshTokenLength)
	}

	session, err := mgr.Validate(context.Background(), value)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if session.AccountID != accountID || session.UserID != userID {
		t.Fatalf("session bound to wrong principal: %+v", session)
	}
	if session.Expiry-session.CreatedAt != int64(domain.SessionTTL/time.Second) {
		t.Fatalf("session lifetime = %d seconds", session.Expiry-session.CreatedAt)
	}
}

func TestSessionManager_ValidateExpiry(t *testing.T) {
	repo := newStubSessionRepo()
	mgr := NewSessionManager(repo)

	created := time.Now()
	mgr.now = func() time.Time { return created }

	value, err := mgr.Create(context.Background(), uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Exactly at expiry is still valid; one second past is not.
	mgr.now = func() time.Time { return created.Add(domain.SessionTTL) }
	if _, err := mgr.Validate(context.Background(), value); err != nil {
		t.Fatalf("token at exact expiry should validate, got %v", err)
	}

	mgr.now = func() time.Time { return created.Add(domain.SessionTTL + time.Second) }
	if _, err := mgr.Validate(context.Background(), value); err != domain.ErrSessionExpired {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}

func TestSessionManager_ValidateExactMatchOnly(t *testing.T) {
	repo := newStubSessionRepo()
	mgr := NewSessionManager(repo)

	value, err := mgr.Create(context.Background(), uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	truncated := value[:len(value)-1]
	if _, err := mgr.Validate(context.Background(), truncated); err != domain.ErrSessionNotFound {
		t.Fatalf("truncated token should not validate, got %v", err)
	}
	if _, err := mgr.Validate(context.Background(), strings.ToUpper(value)); err == nil {
		t.Fatalf("case-changed token should not validate")
	}
}

func TestSessionManager_RevokeTwice(t *testing.T) {
	repo := newStubSessionRepo()
	mgr := NewSessionManager(repo)

	accountID, userID := uuid.New(), uuid.New()
	if _, err := mgr.Create(context.Background(), accountID, userID); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := mgr.Revoke(context.Background(), accountID, userID); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if err := mgr.Revoke(context.Background(), accountID, userID); err != domain.ErrSessionNotFound {
		t.Fatalf("second revoke should fail, got %v", err)
	}
}
