package api

import (
	"errors"
	"net/http"

	"github.com/ai-academy/academyhub/internal/registration"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func (s *Service) HandleRegister() echo.HandlerFunc {
	return func(c echo.Context) error {
		var input registration.Input
		if err := c.Bind(&input); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
		}

		participant, err := s.registrations.Register(c.Request().Context(), &input)
		if err != nil {
			var verr *registration.ValidationError
			switch {
			case errors.As(err, &verr):
				logrus.Warnf("registration validation failed: %v", verr)
				return c.JSON(http.StatusBadRequest, echo.Map{
					"error":   "Validation failed",
					"details": verr.Fields,
				})
			case errors.Is(err, registration.ErrDuplicate):
				logrus.Infof("registration attempt with existing credentials (email=%s)", input.Email)
				return c.JSON(http.StatusConflict, echo.Map{"error": "Email already registered"})
			default:
				logrus.Errorf("registration failed: %v", err)
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Registration failed"})
			}
		}

		s.announcer.ParticipantRegistered(participant)

		return c.JSON(http.StatusOK, echo.Map{
			"success":        true,
			"participant_id": participant.ID,
		})
	}
}
