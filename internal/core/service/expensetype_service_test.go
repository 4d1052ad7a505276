package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

func TestExpenseTypeService_Add_Normalizes(t *testing.T) {
	repo := newStubExpenseTypeRepo()
	svc := NewExpenseTypeService(repo, zerolog.Nop())
	caller := testCaller(domain.RoleUser)

	et, err := svc.Add(context.Background(), caller, "Travel Food")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if et.ExpenseType != "TRAVELFOOD" {
		t.Fatalf("name = %q, want TRAVELFOOD", et.ExpenseType)
	}
}

func TestExpenseTypeService_Add_NormalizedConflict(t *testing.T) {
	repo := newStubExpenseTypeRepo()
	svc := NewExpenseTypeService(repo, zerolog.Nop())
	caller := testCaller(domain.RoleUser)

	if _, err := svc.Add(context.Background(), caller, "travel food"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := svc.Add(context.Background(), caller, "TRAVEL FOOD"); err != domain.ErrExpenseTypeExists {
		t.Fatalf("expected ErrExpenseTypeExists, got %v", err)
	}

	// The same name in another account is no conflict.
	other := testCaller(domain.RoleUser)
	if _, err := svc.Add(context.Background(), other, "travel food"); err != nil {
		t.Fatalf("other-account add: %v", err)
	}
}

func TestExpenseTypeService_List_Empty(t *testing.T) {
	svc := NewExpenseTypeService(newStubExpenseTypeRepo(), zerolog.Nop())

	if _, err := svc.List(context.Background(), testCaller(domain.RoleUser)); err != domain.ErrExpenseTypeNotFound {
		t.Fatalf("expected ErrExpenseTypeNotFound, got %v", err)
	}
}

func TestExpenseTypeService_Update(t *testing.T) {
	repo := newStubExpenseTypeRepo()
	svc := NewExpenseTypeService(repo, zerolog.Nop())
	caller := testCaller(domain.RoleUser)

	et, err := svc.Add(context.Background(), caller, "groceries")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	updated, err := svc.Update(context.Background(), caller, et.ExpenseTypeID, "weekly groceries")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ExpenseType != "WEEKLYGROCERIES" {
		t.Fatalf("name = %q, want WEEKLYGROCERIES", updated.ExpenseType)
	}

	stranger := caller
	stranger.UserID = uuid.New()
	if _, err := svc.Update(context.Background(), stranger, et.ExpenseTypeID, "x"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if _, err := svc.Update(context.Background(), caller, uuid.New(), "x"); err != domain.ErrExpenseTypeNotFound {
		t.Fatalf("expected ErrExpenseTypeNotFound, got %v", err)
	}
}
