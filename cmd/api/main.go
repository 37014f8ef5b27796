package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dayflow/config"
	_ "dayflow/docs" // Swagger docs
	"dayflow/internal/httpserver"
	"dayflow/internal/middleware"
	"dayflow/internal/parse"
	shoppingHTTP "dayflow/internal/shopping/delivery/http"
	taskHTTP "dayflow/internal/task/delivery/http"
	"dayflow/internal/task/repository/inmem"
	"dayflow/internal/task/usecase"
	"dayflow/pkg/dateparse"
	"dayflow/pkg/gcalendar"
	"dayflow/pkg/log"
)

// @title       Dayflow API
// @description Deterministic natural-language task parsing with categories, priorities, recurrence and Google Calendar export.
// @version     1
// @host        localhost:8080
// @schemes     http
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

	logger.Info(ctx, "Starting Dayflow...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Inference engine
	timezone := cfg.Parser.Timezone
	extractor, exErr := dateparse.NewExtractor(timezone)
	if exErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, exErr)
		timezone = "UTC"
		extractor, _ = dateparse.NewExtractor(timezone)
	}
	parser := parse.New(extractor)

	// 4. Task repository
	taskRepo := inmem.New(logger)

	// 5. Google Calendar client (optional)
	var calendarClient usecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			calendarClient = client
		}
	}

	// 6. Task UseCase
	suggestTTL, ttlErr := time.ParseDuration(cfg.Cache.SuggestTTL)
	if ttlErr != nil {
		logger.Warnf(ctx, "Invalid suggest cache TTL %q, using default: %v", cfg.Cache.SuggestTTL, ttlErr)
		suggestTTL = 0
	}
	taskUC := usecase.New(logger, parser, taskRepo, calendarClient, usecase.Config{
		CalendarID:       cfg.GoogleCalendar.CalendarID,
		Timezone:         timezone,
		SuggestCacheSize: cfg.Cache.SuggestSize,
		SuggestCacheTTL:  suggestTTL,
	})

	// 7. Delivery handlers
	mw := middleware.New(logger, middleware.Config{
		RatePerMin: cfg.RateLimit.PerMin,
		RateBurst:  cfg.RateLimit.Burst,
	})
	taskHandler := taskHTTP.New(logger, taskUC)
	shoppingHandler := shoppingHTTP.New(logger)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		TaskHandler:     taskHandler,
		ShoppingHandler: shoppingHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
