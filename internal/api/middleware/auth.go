package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/otokita/catalog-api/internal/api/metrics"
	"github.com/otokita/catalog-api/internal/core/domain"
	"github.com/otokita/catalog-api/internal/core/ports"
)

// userContextKey is where Authenticate stores the resolved user record.
const userContextKey = "auth_user"

// Authenticate is the first stage of the access gate: it requires a
// "Bearer <token>" Authorization header, verifies the token, then re-loads
// the user record named by the claims. Reloading handles the case of a
// deleted account holding a still-valid token, and means the role seen by
// RequireAdmin is the stored one, not the token claim.
//
// Every "not authenticated" outcome maps to 401.
func Authenticate(tokens ports.TokenAuthority, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "bearer token is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "bearer token is required")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token invalid")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.TokenVerificationsTotal.WithLabelValues("unknown_user").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid user")
				}
				return err
			}
			if user.Username != claims.Username {
				metrics.TokenVerificationsTotal.WithLabelValues("unknown_user").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid user")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("success").Inc()
			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser extracts the user attached by Authenticate.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(userContextKey).(*domain.User)
	return user, ok
}
