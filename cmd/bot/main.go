package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"tunebot/internal/config"
	"tunebot/internal/download"
	"tunebot/internal/handler"
	"tunebot/internal/middleware"
	"tunebot/internal/recognition"
	"tunebot/internal/service"
	"tunebot/internal/session"
	"tunebot/internal/tagger"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Tunebot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	if err := os.MkdirAll(cfg.TempDir, 0o755); err != nil {
		logger.Fatal("Failed to create temp directory", zap.Error(err))
	}

	httpClient, err := cfg.ProxyClient(0)
	if err != nil {
		logger.Fatal("Failed to build HTTP client", zap.Error(err))
	}

	// Optional external dependencies are resolved once at startup.
	caps := service.Capabilities{
		YouTube:    cfg.EnableYouTubeDownload && download.YouTubeAvailable(),
		Instagram:  cfg.EnableInstagramDownload && download.InstagramAvailable(),
		TagWriting: cfg.EnableMetadataEditing,
	}
	logger.Info("Capabilities resolved",
		zap.Bool("youtube", caps.YouTube),
		zap.Bool("instagram", caps.Instagram),
		zap.Bool("tag_writing", caps.TagWriting),
	)

	// Initialize services
	recognizer := recognition.NewClient(cfg.RecognizerURL, httpClient)
	musicService := service.NewMusicService(recognizer)
	editService := service.NewEditService(tagger.NewID3Writer(), caps.TagWriting)
	downloadService := service.NewDownloadService(
		download.NewYouTubeDownloader(),
		download.NewInstagramDownloader(),
		download.NewGenericDownloader(httpClient),
		caps,
		logger,
	)
	cleanupService := service.NewCleanupService(cfg.TempDir, time.Hour, logger)
	sessions := session.NewStore()

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		Client: httpClient,
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	bot.Use(middleware.Recover(logger), middleware.RequestLogger(logger))

	// Initialize handler
	h := handler.NewHandler(bot, sessions, musicService, editService, downloadService, cfg.TempDir, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start cleanup job in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runCleanupJob(ctx, cleanupService, logger)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

// runCleanupJob periodically sweeps stale transient files out of the
// working directory.
func runCleanupJob(ctx context.Context, cleanupService *service.CleanupService, logger *zap.Logger) {
	// Run cleanup once at startup
	if err := cleanupService.RemoveStale(); err != nil {
		logger.Error("Failed to run initial cleanup", zap.Error(err))
	}

	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Cleanup job stopped")
			return
		case <-ticker.C:
			if err := cleanupService.RemoveStale(); err != nil {
				logger.Error("Failed to run scheduled cleanup", zap.Error(err))
			}
		}
	}
}
