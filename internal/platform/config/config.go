// Package config loads process configuration from the environment.
// Everything is read once at startup; components receive their settings
// at construction and never touch the environment themselves.
package config

import (
	"errors"
	"os"
	"strings"
)

type HTTPConfig struct {
	Addr string
}

type TelegramConfig struct {
	BotToken string
	ChatID   string
}

type UploadsConfig struct {
	Dir     string
	BaseURL string
}

type AppConfig struct {
	ServiceName string
	AppEnv      string
	LogLevel    string
	HTTP        HTTPConfig

	DatabaseURL string
	NATSURL     string
	JWTSecret   string

	Telegram TelegramConfig
	Uploads  UploadsConfig
}

// IsProduction reports whether the process runs with APP_ENV=production.
// Production forbids the in-memory store fallback and enables photo
// notifications.
func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func Load() (AppConfig, error) {
	cfg := AppConfig{
		ServiceName: env("SERVICE_NAME"),
		AppEnv:      env("APP_ENV"),
		LogLevel:    env("LOG_LEVEL"),
		HTTP:        HTTPConfig{Addr: env("HTTP_ADDR")},
		DatabaseURL: env("DATABASE_URL"),
		NATSURL:     env("NATS_URL"),
		JWTSecret:   env("JWT_SECRET"),
		Telegram: TelegramConfig{
			BotToken: env("TELEGRAM_BOT_TOKEN"),
			ChatID:   env("TELEGRAM_CHAT_ID"),
		},
		Uploads: UploadsConfig{
			Dir:     env("UPLOADS_DIR"),
			BaseURL: env("PUBLIC_BASE_URL"),
		},
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "catalog"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.Uploads.Dir == "" {
		cfg.Uploads.Dir = "uploads"
	}
	if cfg.JWTSecret == "" {
		return AppConfig{}, errors.New("JWT_SECRET is required")
	}
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID == "" {
		return AppConfig{}, errors.New("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}
	return cfg, nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
