package middleware

import (
	"net/http"

	"storefront-checkout/internal/repository"

	"github.com/labstack/echo/v4"
)

// RequireAdmin guards admin-only routes. Must run after Auth.
func RequireAdmin(userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := UserID(c)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			user, err := userRepo.FindByID(c.Request().Context(), userID)
			if err != nil || user.Role != "admin" {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
			}

			return next(c)
		}
	}
}
