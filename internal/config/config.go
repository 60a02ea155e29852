package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ListenAddress string `mapstructure:"listen_address"`

	PostgresDSN string `mapstructure:"postgres_dsn"`

	// Identity provider (GoTrue-compatible auth service).
	AuthBaseURL    string `mapstructure:"auth_base_url"`
	AuthServiceKey string `mapstructure:"auth_service_key"`

	// GitHub REST API, used only for the avatar lookup.
	GitHubAPIBaseURL string `mapstructure:"github_api_base_url"`

	// Name of the per-participant assignment repository used to derive
	// repo URLs for GitHub-linked participants.
	AssignmentRepo string `mapstructure:"assignment_repo"`

	// Base URL the identity provider redirects back to after linking.
	FrontendBaseURL string `mapstructure:"frontend_base_url"`

	// Optional staff-chat announcements. Disabled when the token is empty.
	TelegramToken string `mapstructure:"telegram_token"`
	StaffChatID   int64  `mapstructure:"staff_chat_id"`
}

func New() *Config {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		logrus.Fatalf("unmarshalling config: %v", err)
	}
	return cfg
}

func SetupCommon() {
	viper.SetDefault("listen_address", ":8080")
	viper.SetDefault("github_api_base_url", "https://api.github.com")
	viper.SetDefault("assignment_repo", "ai-academy-2026")
	viper.SetDefault("frontend_base_url", "http://localhost:3000")

	viper.SetEnvPrefix("ACADEMYHUB")

	viper.MustBindEnv("postgres_dsn")
	viper.MustBindEnv("auth_base_url")
	viper.AutomaticEnv()
}
