package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Telegram TelegramConfig
	Google   GoogleConfig
	Session  SessionConfig
	Webhook  WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
}

type GoogleConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	TasklistID      string
	Timezone        string
}

type SessionConfig struct {
	TTL time.Duration
}

type WebhookConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = viper.GetString("telegram.secret_token")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	if tgSecret := viper.GetString("telegram_secret_token"); tgSecret != "" {
		cfg.Telegram.SecretToken = tgSecret
	}
	if cfg.Telegram.BotToken == "" {
		return nil, fmt.Errorf("telegram.bot_token is required")
	}

	// Google Tasks & Calendar
	cfg.Google.CredentialsPath = viper.GetString("google.credentials_path")
	cfg.Google.TokenPath = viper.GetString("google.token_path")
	cfg.Google.CalendarID = viper.GetString("google.calendar_id")
	cfg.Google.TasklistID = viper.GetString("google.tasklist_id")
	cfg.Google.Timezone = viper.GetString("google.timezone")
	if googleCreds := viper.GetString("google_credentials"); googleCreds != "" {
		cfg.Google.CredentialsPath = googleCreds
	}
	if googleToken := viper.GetString("google_token"); googleToken != "" {
		cfg.Google.TokenPath = googleToken
	}

	// Sessions
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	if cfg.Session.TTL <= 0 {
		return nil, fmt.Errorf("session.ttl must be positive")
	}

	// Webhooks
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("google.credentials_path", "credentials.json")
	viper.SetDefault("google.token_path", "token.json")
	viper.SetDefault("google.calendar_id", "primary")
	viper.SetDefault("google.tasklist_id", "@default")
	viper.SetDefault("google.timezone", "Europe/Minsk")
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("webhook.rate_limit_per_min", 60)
}
