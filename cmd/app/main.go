package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"event-insights-service/api"
	"event-insights-service/internal/cache"
	"event-insights-service/internal/config"
	"event-insights-service/internal/database"
	"event-insights-service/internal/discover"
	"event-insights-service/internal/features"
	"event-insights-service/internal/handler"
	"event-insights-service/internal/observability"
	"event-insights-service/internal/repository"
	"event-insights-service/internal/scope"
	"event-insights-service/internal/tagstore"
	"event-insights-service/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}

	// Трассировка
	shutdownTracing, err := observability.InitTracing(context.Background(), cfg, logger)
	if err != nil {
		logger.Warnf("Tracing disabled: %v", err)
	}

	// База данных (database/sql + goose)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected")

	// Redis
	rdb, err := cache.NewRedisClient(cfg)
	if err != nil {
		logger.Fatalf("Redis connection failed: %v", err)
	}
	defer rdb.Close()
	logger.Info("Redis connected")

	queries := database.New(db)

	// Репозитории
	orgRepo := repository.NewOrganizationRepository(queries)
	featureRepo := repository.NewFeatureRepository(queries)
	notifRepo := repository.NewNotificationRepository(queries)

	// Сервисы
	featureFlags := features.NewService(featureRepo, cfg.Features)
	scopeResolver := scope.NewResolver(orgRepo)
	discoverClient := discover.NewClient(cfg.DiscoverURL, cfg.DiscoverTimeout)
	resultCache := cache.NewRedisCache(rdb)

	// Use Cases
	facetsUC := usecase.NewFacetsPerformanceUseCase(orgRepo, featureFlags, scopeResolver, discoverClient, tagstore.New())
	mobileUC := usecase.NewMobileAppEventsUseCase(orgRepo, discoverClient, resultCache, cfg.MobileEventsCacheTTL, logger)
	notificationUC := usecase.NewNotificationUseCase(orgRepo, notifRepo)

	// Echo + Middleware
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.ErrorHandler(logger)
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.RequestIDMiddleware())
	e.Use(handler.TracingMiddleware())
	e.Use(handler.LoggingMiddleware(logger))

	// Handlers
	apiHandler := handler.NewAPIHandler(facetsUC, mobileUC, notificationUC, logger)
	api.RegisterHandlers(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownDeadline)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Errorf("Shutdown failed: %v", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.Warnf("Tracing shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
