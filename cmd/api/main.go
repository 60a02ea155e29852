package main

import (
	"time"

	"github.com/ai-academy/academyhub/internal/account"
	"github.com/ai-academy/academyhub/internal/api"
	"github.com/ai-academy/academyhub/internal/avatar"
	"github.com/ai-academy/academyhub/internal/config"
	"github.com/ai-academy/academyhub/internal/identity"
	"github.com/ai-academy/academyhub/internal/idp"
	"github.com/ai-academy/academyhub/internal/logging"
	"github.com/ai-academy/academyhub/internal/notify"
	"github.com/ai-academy/academyhub/internal/registration"
	"github.com/ai-academy/academyhub/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/telebot.v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	setupConfig()
	logging.Init()

	cfg := config.New()
	logrus.Debugf("config: %+v", cfg)

	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	store := storage.New(db)
	if err := store.Migrate(); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	provider := idp.NewClient(cfg.AuthBaseURL, cfg.AuthServiceKey)
	avatars := avatar.NewResolver(cfg.GitHubAPIBaseURL)

	var announcer *notify.Announcer
	if cfg.TelegramToken != "" {
		bot, err := telebot.NewBot(telebot.Settings{
			Token: cfg.TelegramToken,
			Poller: &telebot.LongPoller{
				Timeout: 10 * time.Second,
			},
		})
		if err != nil {
			logrus.Fatalf("Failed to create bot: %v", err)
		}
		announcer = notify.NewAnnouncer(bot, cfg.StaffChatID)
	}

	service := api.NewService(
		cfg,
		registration.NewService(store, avatars, cfg.AssignmentRepo),
		account.NewService(store, provider),
		identity.NewResolver(store, cfg.AssignmentRepo),
		provider,
		announcer,
	)

	e := echo.New()
	service.RegisterRoutes(e)
	if err := e.Start(cfg.ListenAddress); err != nil {
		logrus.Fatalf("Server stopped: %v", err)
	}
}

func setupConfig() {
	viper.BindEnv("auth_service_key")
	viper.BindEnv("telegram_token")
	config.SetupCommon()
}
