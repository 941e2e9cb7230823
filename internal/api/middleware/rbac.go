package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/otokita/catalog-api/internal/core/domain"
)

// RequireAdmin is the second stage of the access gate. It relies on
// Authenticate having attached the resolved user record: a missing record
// means the request never authenticated (401), while an authenticated
// non-admin is forbidden (403). The role checked here is the freshly loaded
// one, so a role revoked after token issuance is honoured immediately.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
			}
			if user.Role != domain.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}
