package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/core/ports"
)

// AdminHandler serves the super-admin routes, gated by the shared service
// token rather than a tenant identity.
type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

type createAccountRequest struct {
	AccountName string `json:"account_name" validate:"required"`
	UserName    string `json:"user_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	Password    string `json:"password" validate:"required,min=8"`
}

// CreateAccount bootstraps an account with its first user, who becomes the
// account_admin.
//
//	POST /api/admin/account/create
func (h *AdminHandler) CreateAccount(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	admin, err := h.admin.CreateAccount(c.Request().Context(), ports.NewAccountInput{
		AccountName: req.AccountName,
		UserName:    req.UserName,
		Email:       req.Email,
		Phone:       req.Phone,
		Password:    req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, admin)
}

type accountNameRequest struct {
	AccountName string `json:"account_name" validate:"required"`
}

// DeactivateAccount soft-deletes an account. Its data stays in place and
// its users can no longer log in.
//
//	DELETE /api/admin/account
func (h *AdminHandler) DeactivateAccount(c echo.Context) error {
	var req accountNameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.admin.DeactivateAccount(c.Request().Context(), req.AccountName); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"detail": "account deactivated"})
}

// PurgeAccount hard-deletes an account and everything in it.
//
//	DELETE /api/admin/account/purge
func (h *AdminHandler) PurgeAccount(c echo.Context) error {
	var req accountNameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.admin.PurgeAccount(c.Request().Context(), req.AccountName); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type adminUserRequest struct {
	AccountName string `json:"account_name" validate:"required"`
	UserName    string `json:"user_name" validate:"required"`
}

// DeleteUser removes a user from any account, cascading their data.
//
//	DELETE /api/admin/account/user
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	var req adminUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.admin.DeleteUser(c.Request().Context(), req.AccountName, req.UserName); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type adminRoleRequest struct {
	AccountName string `json:"account_name" validate:"required"`
	UserName    string `json:"user_name" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=user account_admin"`
}

// UpdateUserRole changes a user's role in any account. This is the override
// path: no last-admin guard applies.
//
//	PUT /api/admin/account/user
func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	var req adminRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.admin.UpdateUserRole(c.Request().Context(), req.AccountName, req.UserName, domain.Role(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ListAccounts returns every account in the system.
//
//	GET /api/admin/accounts
func (h *AdminHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.admin.ListAccounts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

// ListUsers returns every user across all accounts.
//
//	GET /api/admin/users
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.admin.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ListIncomes returns every income across all accounts.
//
//	GET /api/admin/income
func (h *AdminHandler) ListIncomes(c echo.Context) error {
	incomes, err := h.admin.ListIncomes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, incomes)
}

// ListExpenditures returns every expenditure across all accounts.
//
//	GET /api/admin/expenditure
func (h *AdminHandler) ListExpenditures(c echo.Context) error {
	expenditures, err := h.admin.ListExpenditures(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, expenditures)
}

// ListExpenseTypes returns every expense type across all accounts.
//
//	GET /api/admin/expense
func (h *AdminHandler) ListExpenseTypes(c echo.Context) error {
	types, err := h.admin.ListExpenseTypes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, types)
}
