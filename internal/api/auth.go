package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ai-academy/academyhub/internal/idp"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type magicLinkRequest struct {
	Email string `json:"email"`
}

// HandleMagicLink asks the identity provider to send a passwordless
// sign-in email.
func (s *Service) HandleMagicLink() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req magicLinkRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
		}
		if req.Email == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
		}

		redirectTo := fmt.Sprintf("%s/auth/callback", s.config.FrontendBaseURL)
		if err := s.idp.SendMagicLink(c.Request().Context(), req.Email, redirectTo); err != nil {
			logrus.Errorf("failed to send magic link: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to send magic link"})
		}

		return c.JSON(http.StatusOK, echo.Map{"success": true})
	}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleSignIn proxies a password grant to the identity provider.
func (s *Service) HandleSignIn() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req signInRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
		}
		if req.Email == "" || req.Password == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
		}

		session, err := s.idp.PasswordSignIn(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, idp.ErrUnauthorized) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid email or password"})
			}
			logrus.Errorf("sign-in failed: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
		}

		return c.JSON(http.StatusOK, session)
	}
}
