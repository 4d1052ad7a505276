package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ledgerkeep/ledgerkeep/internal/core/ports"
)

// ExpenditureHandler serves expense recording and listing.
type ExpenditureHandler struct {
	expenditures ports.ExpenditureService
}

func NewExpenditureHandler(expenditures ports.ExpenditureService) *ExpenditureHandler {
	return &ExpenditureHandler{expenditures: expenditures}
}

// List returns the expenditures visible to the caller.
//
//	GET /api/expenditure/view
func (h *ExpenditureHandler) List(c echo.Context) error {
	caller, err := CallerFromContext(c)
	if err != nil {
		return err
	}

	expenditures, err := h.expenditures.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, expenditures)
}

type addExpenditureRequest struct {
	Amount  int64  `json:"amount" validate:"required,gt=0"`
	Expense string `json:"expense" validate:"required"`
}

// Add records a new expenditure, creating its expense type on the fly when
// the account has not used it before.
//
//	POST /api/expenditure/add
func (h *ExpenditureHandler) Add(c echo.Context) error {
	caller, err := CallerFromContext(c)
	if err != nil {
		return err
	}

	var req addExpenditureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	expenditure, err := h.expenditures.Add(c.Request().Context(), caller, req.Amount, req.Expense)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, expenditure)
}

type editExpenditureRequest struct {
	ExpendID string `json:"expend_id" validate:"required,uuid4"`
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Expense  string `json:"expense" validate:"required"`
}

// Edit changes the amount and classification of an existing expenditure.
//
//	PUT /api/expenditure/edit
func (h *ExpenditureHandler) Edit(c echo.Context) error {
	caller, err := CallerFromContext(c)
	if err != nil {
		return err
	}

	var req editExpenditureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	expendID, err := uuid.Parse(req.ExpendID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid expend_id")
	}

	expenditure, err := h.expenditures.Update(c.Request().Context(), caller, expendID, req.Amount, req.Expense)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, expenditure)
}
