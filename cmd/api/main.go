package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"daily-updates/config"
	_ "daily-updates/docs" // Swagger docs
	"daily-updates/internal/httpserver"
	"daily-updates/internal/test"
	updatesHTTP "daily-updates/internal/updates/delivery/http"
	"daily-updates/internal/updates/usecase"
	"daily-updates/pkg/log"
	"daily-updates/pkg/slackhook"
)

// @title       Daily Updates API
// @description Relays the /updates Slack slash command into a formatted channel message.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Daily Updates relay...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	if cfg.Updates.AuthEnabled() {
		logger.Info(ctx, "Slash command token check enabled")
	} else {
		logger.Warn(ctx, "UPDATES_TOKEN not set, /updates accepts any caller")
	}

	// 3. Updates domain
	webhook := slackhook.NewClient(cfg.Updates.WebhookURL, cfg.Updates.WebhookTimeout)
	updatesUC := usecase.New(logger, webhook, cfg.Updates.IconURL)
	updatesHandler := updatesHTTP.New(logger, updatesUC, updatesHTTP.SecurityConfig{
		Token: cfg.Updates.Token,
	})

	// Dry-run formatter, kept out of production
	var testHandler test.Handler
	if cfg.Environment.Name != "production" {
		testHandler = test.New(logger, cfg.Updates.IconURL)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		CommitHash:     cfg.CommitHash,
		UpdatesHandler: updatesHandler,
		TestHandler:    testHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
