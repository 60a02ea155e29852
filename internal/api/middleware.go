package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ai-academy/academyhub/internal/idp"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const principalKey = "principal"

// RequireAuth resolves the bearer token against the identity provider and
// stores the principal in the request context.
func (s *Service) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		if header == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
		}

		user, err := s.idp.GetUser(c.Request().Context(), parts[1])
		if err != nil {
			if errors.Is(err, idp.ErrUnauthorized) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
			}
			logrus.Errorf("failed to fetch principal: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
		}

		c.Set(principalKey, user)
		return next(c)
	}
}

func principal(c echo.Context) *idp.User {
	user, _ := c.Get(principalKey).(*idp.User)
	return user
}
