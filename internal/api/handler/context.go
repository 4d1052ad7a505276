package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ledgerkeep/ledgerkeep/internal/api/middleware"
	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

// CallerFromContext returns the authenticated caller identity set by the
// auth middleware. A missing identity means the route was registered
// without the middleware, which is a wiring bug surfaced as 401 rather
// than a panic.
func CallerFromContext(c echo.Context) (domain.CallerIdentity, error) {
	identity, ok := middleware.Identity(c)
	if !ok {
		return domain.CallerIdentity{}, domain.ErrUnauthenticated
	}
	return identity, nil
}
