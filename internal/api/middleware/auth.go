package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/uybor/uybor-api/internal/core/domain"
	"github.com/uybor/uybor-api/internal/core/ports"
)

// UserIDKey is the echo context key under which the authenticated
// user's id is stored.
const UserIDKey = "user_id"

// Auth validates the bearer token and injects the subject user id into
// the request context. Expired tokens are distinguished from invalid
// ones in the response message.
func Auth(tokens ports.TokenManager) echo.MiddlewareFunc {
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

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrExpiredToken) {
					return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrExpiredToken.Error())
				}
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrInvalidToken.Error())
			}

			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}
