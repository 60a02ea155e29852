package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ai-academy/academyhub/internal/identity"
	"github.com/ai-academy/academyhub/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// HandleMe resolves the principal to its participant, if any, plus the
// admin flag. A missing profile is not an error here: the client uses the
// no_profile status to route the user into onboarding.
func (s *Service) HandleMe() echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		user := principal(c)

		isAdmin, err := s.resolver.IsAdmin(ctx, user.ID)
		if err != nil {
			logrus.Errorf("failed to check admin membership for %s: %v", user.ID, err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
		}

		participant, linkPerformed, err := s.resolver.Resolve(ctx, user)
		if err != nil {
			if errors.Is(err, identity.ErrNoParticipant) {
				return c.JSON(http.StatusOK, echo.Map{
					"participant":    nil,
					"is_admin":       isAdmin,
					"link_performed": false,
					"status":         "no_profile",
				})
			}
			logrus.Errorf("failed to resolve participant for %s: %v", user.ID, err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
		}

		return c.JSON(http.StatusOK, echo.Map{
			"participant":    participant,
			"is_admin":       isAdmin || participant.IsAdmin,
			"link_performed": linkPerformed,
			"status":         string(participant.Status),
		})
	}
}

func (s *Service) HandleProfile() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := principal(c)

		participant, _, err := s.resolver.Resolve(c.Request().Context(), user)
		if err != nil {
			if errors.Is(err, identity.ErrNoParticipant) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "Please complete your profile first"})
			}
			logrus.Errorf("failed to resolve participant for %s: %v", user.ID, err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
		}

		return c.JSON(http.StatusOK, profilePayload(participant))
	}
}

// HandleLinkGitHub starts GitHub account linking for the principal. The
// identity provider runs the linking protocol; the response only carries
// the URL to send the browser to.
func (s *Service) HandleLinkGitHub() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := principal(c)

		redirectTo := fmt.Sprintf("%s/auth/callback?next=/profile", s.config.FrontendBaseURL)
		linkURL, err := s.idp.LinkIdentityURL(user.ID, redirectTo)
		if err != nil {
			logrus.Errorf("failed to build link url for %s: %v", user.ID, err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
		}

		return c.JSON(http.StatusOK, echo.Map{"url": linkURL})
	}
}

func profilePayload(participant *models.Participant) echo.Map {
	return echo.Map{
		"id":                  participant.ID,
		"name":                participant.Name,
		"nickname":            participant.Nickname,
		"email":               participant.Email,
		"role":                participant.Role,
		"team":                participant.Team,
		"stream":              participant.Stream,
		"github_username":     participant.GitHubUsername,
		"avatar_url":          participant.AvatarURL,
		"repo_url":            participant.RepoURL,
		"status":              participant.Status,
		"email_notifications": participant.EmailNotifications,
	}
}
