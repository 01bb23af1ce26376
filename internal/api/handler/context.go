package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/4lucard7/BlogApi/internal/api/middleware"
	"github.com/4lucard7/BlogApi/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. A
// missing identity on a gated route means the middleware chain is
// misconfigured; reject with 401 rather than proceed anonymously.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	who, ok := middleware.IdentityFrom(c)
	if !ok || who.ID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return who, nil
}
