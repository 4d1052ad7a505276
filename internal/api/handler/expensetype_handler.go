package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ledgerkeep/ledgerkeep/internal/core/ports"
)

// ExpenseTypeHandler serves the per-account expense classification routes.
type ExpenseTypeHandler struct {
	expenseTypes ports.ExpenseTypeService
}

func NewExpenseTypeHandler(expenseTypes ports.ExpenseTypeService) *ExpenseTypeHandler {
	return &ExpenseTypeHandler{expenseTypes: expenseTypes}
}

// List returns the expense types visible to the caller.
//
//	GET /api/expense/view
func (h *ExpenseTypeHandler) List(c echo.Context) error {
	caller, err := CallerFromContext(c)
	if err != nil {
		return err
	}

	types, err := h.expenseTypes.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, types)
}

type addExpenseTypeRequest struct {
	ExpenseType string `json:"expense_type" validate:"required"`
}

// Add creates a new expense type in the caller's account. The name is
// stored normalized; a normalized duplicate is a conflict.
//
//	POST /api/expense/add
func (h *ExpenseTypeHandler) Add(c echo.Context) error {
	caller, err := CallerFromContext(c)
	if err != nil {
		return err
	}

	var req addExpenseTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	et, err := h.expenseTypes.Add(c.Request().Context(), caller, req.ExpenseType)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, et)
}

type editExpenseTypeRequest struct {
	ExpenseTypeID string `json:"expense_type_id" validate:"required,uuid4"`
	ExpenseType   string `json:"expense_type" validate:"required"`
}

// Edit renames an existing expense type the caller can access.
//
//	PUT /api/expense/edit
func (h *ExpenseTypeHandler) Edit(c echo.Context) error {
	caller, err := CallerFromContext(c)
	if err != nil {
		return err
	}

	var req editExpenseTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	expenseTypeID, err := uuid.Parse(req.ExpenseTypeID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid expense_type_id")
	}

	et, err := h.expenseTypes.Update(c.Request().Context(), caller, expenseTypeID, req.ExpenseType)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, et)
}
