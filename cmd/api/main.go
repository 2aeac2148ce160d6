package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/tasks/v1"

	"task-planner-bot/config"
	"task-planner-bot/internal/dialog"
	"task-planner-bot/internal/httpserver"
	tgDelivery "task-planner-bot/internal/planner/delivery/telegram"
	"task-planner-bot/internal/planner/usecase"
	"task-planner-bot/internal/router"
	"task-planner-bot/internal/session"
	"task-planner-bot/internal/webhook"
	"task-planner-bot/pkg/datetext"
	"task-planner-bot/pkg/gauth"
	"task-planner-bot/pkg/gcalendar"
	"task-planner-bot/pkg/gtasks"
	"task-planner-bot/pkg/log"
	"task-planner-bot/pkg/telegram"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting task planner bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.Google.Timezone)

	// 3. Telegram Bot client
	telegramBot := telegram.NewBot(cfg.Telegram.BotToken)

	// 4. Google Tasks and Calendar clients (shared OAuth token)
	provider, err := gauth.NewProvider(ctx,
		cfg.Google.CredentialsPath, cfg.Google.TokenPath,
		tasks.TasksScope, calendar.CalendarScope,
	)
	if err != nil {
		logger.Errorf(ctx, "Google auth not available: %v", err)
		logger.Error(ctx, "→ Run `go run scripts/gauth/main.go` to generate token.json")
		return
	}

	httpClient := provider.Client(ctx)
	tasksClient, err := gtasks.NewClientFromHTTP(ctx, httpClient)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Google Tasks client: %v", err)
		return
	}
	calendarClient, err := gcalendar.NewClientFromHTTP(ctx, httpClient)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Google Calendar client: %v", err)
		return
	}
	logger.Info(ctx, "✅ Google Tasks and Calendar initialized")

	// 5. Date extractor
	dates, err := datetext.NewExtractor(cfg.Google.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Google.Timezone, err)
		dates, _ = datetext.NewExtractor("UTC")
	}

	// 6. Planner UseCase
	plannerUC := usecase.New(logger, tasksClient, calendarClient, dates.Location(),
		cfg.Google.TasklistID, cfg.Google.CalendarID)

	// 7. Dialogue engine over TTL-backed sessions
	sessions := session.NewManager(cfg.Session.TTL)
	engine := dialog.New(logger, sessions, plannerUC, dates)

	// 8. Command routing and webhook security
	cmdRouter := router.New(nil)
	security := webhook.NewSecurityValidator(webhook.SecurityConfig{
		Secret:          cfg.Telegram.SecretToken,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	})

	// 9. Telegram delivery handler
	telegramHandler := tgDelivery.New(logger, plannerUC, engine, cmdRouter,
		telegramBot, security, dates.Location())

	// Register webhook: auto-detect ngrok or fallback to manual config
	webhookURL := cfg.Telegram.WebhookURL
	if webhookURL == "" {
		ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
		if ngrokErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
		} else {
			webhookURL = ngrokURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}

	if webhookURL != "" {
		if whErr := telegramBot.SetWebhook(webhookURL, cfg.Telegram.SecretToken); whErr != nil {
			logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
		} else {
			logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
		}
	}

	// 10. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
