package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	infraTelegram "homework_status_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		// Missing credentials are the only fatal condition; nothing has
		// started yet, so exit before entering the poll loop.
		log.Fatalf("Отсутствуют нужные параметры: %v", err)
	}
	logger.Init(cfg)

	log.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Chat ID: %d, Interval: %s",
		cfg.LogLevel, cfg.Environment, cfg.TelegramChatID, cfg.PollInterval)

	// The bot only sends messages; no update handlers are registered and
	// the poller for incoming updates is never started.
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		log.Fatalf("Could not create Telegram bot: %v", err)
	}

	apiClient := practicum.NewHTTPClient(cfg.Endpoint, cfg.PracticumToken, nil)
	tgClient := infraTelegram.NewTelebotAdapter(bot)

	poller := app.NewPoller(apiClient, tgClient, cfg.TelegramChatID, log)
	poller.Bootstrap(context.Background())

	pollScheduler := scheduler.NewPollScheduler(poller, log, cfg.PollInterval)
	if err := pollScheduler.Start(); err != nil {
		log.Fatalf("Could not start poll scheduler: %v", err)
	}

	log.Info("Application setup complete. Polling for homework status updates...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down application...")
	pollScheduler.Stop()
	log.Info("Application shut down gracefully.")
}
