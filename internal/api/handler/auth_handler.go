package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ledgerkeep/ledgerkeep/internal/api/metrics"
	"github.com/ledgerkeep/ledgerkeep/internal/api/middleware"
	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/core/ports"
)

// AuthHandler serves login, refresh-token exchange and logout.
type AuthHandler struct {
	auth ports.AuthService
	log  zerolog.Logger
}

func NewAuthHandler(auth ports.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

type loginRequest struct {
	AccountName string `json:"account_name" validate:"required"`
	UserName    string `json:"user_name" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

type loginResponse struct {
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// Login verifies credentials and opens a refresh session.
//
//	POST /api/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	refreshToken, err := h.auth.Login(c.Request().Context(), req.AccountName, req.UserName, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	})
}

// refreshResponse carries the fresh access token together with the claims
// signed into it, so clients never need to decode the JWT themselves.
type refreshResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
}

// Refresh exchanges the bearer refresh token for a new access token.
//
//	GET /api/refresh
func (h *AuthHandler) Refresh(c echo.Context) error {
	refreshToken, err := middleware.Bearer(c)
	if err != nil {
		return err
	}

	refreshed, err := h.auth.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		metrics.RefreshesTotal.WithLabelValues(refreshResult(err)).Inc()
		return err
	}

	metrics.RefreshesTotal.WithLabelValues("success").Inc()
	metrics.AccessTokensIssuedTotal.Inc()

	identity := refreshed.Identity
	return c.JSON(http.StatusOK, refreshResponse{
		AccessToken: refreshed.AccessToken,
		TokenType:   "bearer",
		AccountID:   identity.AccountID.String(),
		AccountName: identity.AccountName,
		UserID:      identity.UserID.String(),
		UserName:    identity.UserName,
		Email:       identity.Email,
		Phone:       identity.Phone,
		Role:        string(identity.Role),
	})
}

// Logout revokes the caller's refresh session. A second logout without a
// fresh login returns 404.
//
//	GET /api/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	caller, err := CallerFromContext(c)
	if err != nil {
		return err
	}

	if err := h.auth.Logout(c.Request().Context(), caller); err != nil {
		return err
	}

	metrics.SessionsRevokedTotal.Inc()
	return c.JSON(http.StatusOK, map[string]string{"detail": "logged out"})
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "throttled"
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	default:
		return "invalid_credentials"
	}
}

func refreshResult(err error) string {
	if errors.Is(err, domain.ErrSessionExpired) {
		return "expired"
	}
	return "invalid"
}
