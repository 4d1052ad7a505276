package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ledgerkeep/ledgerkeep/internal/api/metrics"
	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. The messages are the
	// sentinel texts themselves; token failures stay deliberately vague.
	switch {
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrSessionExpired):
		metrics.AuthzDenialsTotal.WithLabelValues("unauthenticated").Inc()
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrInvalidServiceKey):
		metrics.AuthzDenialsTotal.WithLabelValues("unauthenticated").Inc()
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrLastAdmin):
		metrics.AuthzDenialsTotal.WithLabelValues("last_admin").Inc()
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrInvalidRole):
		metrics.AuthzDenialsTotal.WithLabelValues("invalid_role").Inc()
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		metrics.AuthzDenialsTotal.WithLabelValues("forbidden").Inc()
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrIncomeNotFound),
		errors.Is(err, domain.ErrExpenditureNotFound),
		errors.Is(err, domain.ErrExpenseTypeNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrAccountExists),
		errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrExpenseTypeExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrInvalidAccountName),
		errors.Is(err, domain.ErrInvalidPhone):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
