package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/core/token"
)

// identityKey is the echo context key the decoded caller identity is stored
// under. Handlers read it back through handler.CallerFromContext.
const identityKey = "caller_identity"

// Auth verifies the bearer access token and injects the decoded caller
// identity into the request context. Every failure is the same 401; the
// response never says which check rejected the token.
func Auth(issuer *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c)
			if err != nil {
				return err
			}

			identity, err := issuer.VerifyAndDecode(raw)
			if err != nil {
				return domain.ErrUnauthenticated
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// bearerToken extracts the credential from the Authorization header.
func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", domain.ErrUnauthenticated
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", domain.ErrUnauthenticated
	}
	return parts[1], nil
}

// Identity retrieves the caller identity stored by Auth. The second return
// is false when the middleware did not run.
func Identity(c echo.Context) (domain.CallerIdentity, bool) {
	identity, ok := c.Get(identityKey).(domain.CallerIdentity)
	return identity, ok
}

// Bearer exposes the raw bearer credential for endpoints that authenticate
// with something other than an access token (refresh, service token).
func Bearer(c echo.Context) (string, error) {
	return bearerToken(c)
}
