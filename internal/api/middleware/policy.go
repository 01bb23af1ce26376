package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// The policy middlewares below are chained after Auth and decide on the
// identity it injected. Each is a pure decision over the request context;
// a missing identity means Auth never ran and is a 401, not a 403.

// RequireAdmin allows only administrators through.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			who, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if !who.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}

// RequireSelf allows only the user whose id is in the named path parameter.
// Admins get no bypass here: some operations (profile edits) are strictly
// personal.
func RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			who, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if who.ID != c.Param(param) {
				return echo.NewHTTPError(http.StatusForbidden, "only the account owner may do this")
			}
			return next(c)
		}
	}
}

// RequireSelfOrAdmin allows the user whose id is in the named path parameter,
// or any administrator.
func RequireSelfOrAdmin(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			who, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if who.ID != c.Param(param) && !who.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "only the account owner or an admin may do this")
			}
			return next(c)
		}
	}
}
