package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

// RequireRole gates a route group on the caller's tenant role. It runs
// after Auth and is a fast-fail complement to the service-layer checks,
// which remain authoritative.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := Identity(c)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if !identity.Role.Valid() {
				return domain.ErrInvalidRole
			}
			if _, ok := allowed[identity.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
