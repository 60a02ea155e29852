// Package api exposes the participant-management HTTP surface.
package api

import (
	"context"
	"net/http"

	"github.com/ai-academy/academyhub/internal/account"
	"github.com/ai-academy/academyhub/internal/config"
	"github.com/ai-academy/academyhub/internal/identity"
	"github.com/ai-academy/academyhub/internal/idp"
	"github.com/ai-academy/academyhub/internal/notify"
	"github.com/ai-academy/academyhub/internal/registration"
	"github.com/labstack/echo/v4"
)

// IdentityProvider is the slice of the idp client the handlers use
// directly. Principal deletion goes through the account service instead.
type IdentityProvider interface {
	GetUser(ctx context.Context, accessToken string) (*idp.User, error)
	SendMagicLink(ctx context.Context, email, redirectTo string) error
	PasswordSignIn(ctx context.Context, email, password string) (*idp.Session, error)
	LinkIdentityURL(userID, redirectTo string) (string, error)
}

type Service struct {
	config        *config.Config
	registrations *registration.Service
	accounts      *account.Service
	resolver      *identity.Resolver
	idp           IdentityProvider
	announcer     *notify.Announcer
}

func NewService(
	cfg *config.Config,
	registrations *registration.Service,
	accounts *account.Service,
	resolver *identity.Resolver,
	provider IdentityProvider,
	announcer *notify.Announcer,
) *Service {
	return &Service{
		config:        cfg,
		registrations: registrations,
		accounts:      accounts,
		resolver:      resolver,
		idp:           provider,
		announcer:     announcer,
	}
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", s.HandleHealth())
	api.POST("/register", s.HandleRegister())
	api.POST("/auth/magic-link", s.HandleMagicLink())
	api.POST("/auth/sign-in", s.HandleSignIn())
	api.POST("/onboarding/advance", s.HandleOnboardingAdvance())

	authed := api.Group("", s.RequireAuth)
	authed.GET("/me", s.HandleMe())
	authed.GET("/profile", s.HandleProfile())
	authed.POST("/profile/link-github", s.HandleLinkGitHub())
	authed.DELETE("/account/delete", s.HandleDeleteAccount())
}

func (s *Service) HandleHealth() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	}
}
