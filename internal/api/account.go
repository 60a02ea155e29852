package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func (s *Service) HandleDeleteAccount() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := principal(c)

		if err := s.accounts.Delete(c.Request().Context(), user); err != nil {
			logrus.Errorf("account deletion failed for auth user %s: %v", user.ID, err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete account"})
		}

		s.announcer.AccountDeleted(user.Email)

		return c.JSON(http.StatusOK, echo.Map{"success": true})
	}
}
