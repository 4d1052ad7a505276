package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

// ServiceToken gates the super-admin surface on the shared service token.
// The credential is only compared for equality, so it must be handled as a
// high-value secret; comparison is constant-time to avoid timing probes.
func ServiceToken(serviceToken string) echo.MiddlewareFunc {
	expected := []byte(serviceToken)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			presented, err := bearerToken(c)
			if err != nil {
				return domain.ErrInvalidServiceKey
			}
			if subtle.ConstantTimeCompare([]byte(presented), expected) != 1 {
				return domain.ErrInvalidServiceKey
			}
			return next(c)
		}
	}
}
