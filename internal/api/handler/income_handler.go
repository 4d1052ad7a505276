package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ledgerkeep/ledgerkeep/internal/core/ports"
)

// IncomeHandler serves income recording and listing.
type IncomeHandler struct {
	incomes ports.IncomeService
}

func NewIncomeHandler(incomes ports.IncomeService) *IncomeHandler {
	return &IncomeHandler{incomes: incomes}
}

// List returns today's incomes visible to the caller.
//
//	GET /api/income/view
func (h *IncomeHandler) List(c echo.Context) error {
	caller, err := CallerFromContext(c)
	if err != nil {
		return err
	}

	incomes, err := h.incomes.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, incomes)
}

type addIncomeRequest struct {
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Method string `json:"method" validate:"required"`
}

// Add records a new income for the caller.
//
//	POST /api/income/add
func (h *IncomeHandler) Add(c echo.Context) error {
	caller, err := CallerFromContext(c)
	if err != nil {
		return err
	}

	var req addIncomeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	income, err := h.incomes.Add(c.Request().Context(), caller, req.Amount, req.Method)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, income)
}

type editIncomeRequest struct {
	TransID string `json:"trans_id" validate:"required,uuid4"`
	Amount  int64  `json:"amount" validate:"required,gt=0"`
}

// Edit changes the amount of an existing income the caller can access.
//
//	PUT /api/income/edit
func (h *IncomeHandler) Edit(c echo.Context) error {
	caller, err := CallerFromContext(c)
	if err != nil {
		return err
	}

	var req editIncomeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transID, err := uuid.Parse(req.TransID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid trans_id")
	}

	income, err := h.incomes.Update(c.Request().Context(), caller, transID, req.Amount)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, income)
}
