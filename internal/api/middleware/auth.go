package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/4lucard7/BlogApi/internal/core/domain"
	"github.com/4lucard7/BlogApi/internal/core/token"
)

// identityKey is the echo context key the verified identity is stored under.
const identityKey = "identity"

// Auth verifies the bearer credential and injects the identity into context.
// Authentication always runs before any policy check: an invalid credential
// yields 401 even when the route would otherwise allow the caller through.
func Auth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			who, err := codec.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(identityKey, who)
			return next(c)
		}
	}
}

// IdentityFrom extracts the identity injected by Auth. ok is false when the
// middleware did not run on this route.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	who, ok := c.Get(identityKey).(domain.Identity)
	return who, ok
}
