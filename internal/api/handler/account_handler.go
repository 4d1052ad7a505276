package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/core/ports"
)

// AccountHandler serves the tenant-scoped user management routes. Every
// route sits behind the auth middleware plus the account_admin role gate.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// ListUsers returns every user in the caller's account.
//
//	GET /api/account/admin/users/view
func (h *AccountHandler) ListUsers(c echo.Context) error {
	caller, err := CallerFromContext(c)
	if err != nil {
		return err
	}

	users, err := h.accounts.ListUsers(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

type createUserRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=user account_admin"`
}

// CreateUser adds a user to the caller's account.
//
//	POST /api/account/create/user
func (h *AccountHandler) CreateUser(c echo.Context) error {
	caller, err := CallerFromContext(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.accounts.CreateUser(c.Request().Context(), caller, ports.NewUserInput{
		UserName: req.UserName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

type deleteUserRequest struct {
	UserName string `json:"user_name" validate:"required"`
}

// DeleteUser removes a user from the caller's account together with all
// their data.
//
//	DELETE /api/account/remove/user
func (h *AccountHandler) DeleteUser(c echo.Context) error {
	caller, err := CallerFromContext(c)
	if err != nil {
		return err
	}

	var req deleteUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.accounts.DeleteUser(c.Request().Context(), caller, req.UserName); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type updateRoleRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=user account_admin"`
}

// UpdateUserRole changes a user's role within the caller's account. The
// account's last account_admin cannot demote themselves.
//
//	PUT /api/account/admin/user/role
func (h *AccountHandler) UpdateUserRole(c echo.Context) error {
	caller, err := CallerFromContext(c)
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.accounts.UpdateUserRole(c.Request().Context(), caller, req.UserName, domain.Role(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
