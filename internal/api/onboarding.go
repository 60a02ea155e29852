package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ai-academy/academyhub/internal/avatar"
	"github.com/ai-academy/academyhub/internal/wizard"
	"github.com/labstack/echo/v4"
)

type advanceRequest struct {
	Step             wizard.Step    `json:"step"`
	Direction        string         `json:"direction"`
	Profile          wizard.Profile `json:"profile"`
	AvatarBackground string         `json:"avatar_background"`
}

// HandleOnboardingAdvance validates a single wizard transition. The client
// holds the wizard state and round-trips it; nothing is stored server-side
// until the final registration call.
func (s *Service) HandleOnboardingAdvance() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req advanceRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
		}

		if !req.Step.Valid() {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unknown wizard step"})
		}

		var (
			next wizard.Step
			err  error
		)
		switch req.Direction {
		case "next":
			next, err = wizard.Next(req.Step, &req.Profile)
		case "back":
			next, err = wizard.Back(req.Step)
		default:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Direction must be next or back"})
		}

		if err != nil {
			var gerr *wizard.GuardError
			if errors.As(err, &gerr) {
				return c.JSON(http.StatusBadRequest, echo.Map{
					"error": gerr.Message,
					"field": gerr.Field,
					"step":  req.Step,
				})
			}
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unknown wizard step"})
		}

		return c.JSON(http.StatusOK, echo.Map{
			"step":           next,
			"steps":          wizard.Steps(),
			"avatar_preview": avatarPreview(&req.Profile, req.AvatarBackground),
		})
	}
}

// avatarPreview mirrors the placeholder the registration flow would
// generate, preferring the nickname's first two characters, uppercased,
// over the name's initials.
func avatarPreview(profile *wizard.Profile, background string) string {
	if background == "" {
		background = avatar.Colors[0]
	}

	if profile.Nickname != "" {
		runes := []rune(profile.Nickname)
		if len(runes) > 2 {
			runes = runes[:2]
		}
		return avatar.LabelURL(strings.ToUpper(string(runes)), background)
	}
	return avatar.PlaceholderURL(profile.Name, background)
}
