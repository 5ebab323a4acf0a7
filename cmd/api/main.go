package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskmaster/internal/adapter/database/mongodb"
	httpadapter "taskmaster/internal/adapter/http"
	"taskmaster/pkg/config"
	"taskmaster/pkg/logger"
	"taskmaster/pkg/metrics"
)

func main() {
	cfg, err := config.Load()

	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	appLogger := logger.New(cfg.LogLevel, cfg.Environment)

	ctx := context.Background()

	db, err := mongodb.NewDB(ctx, cfg)

	if err != nil {
		appLogger.Fatal().Err(err).Msg("MongoDB connection failed")
	}

	appLogger.Info().Str("database", cfg.MongoDatabase).Msg("Connected to MongoDB")

	appMetrics := metrics.NewAppMetrics()

	container := httpadapter.NewContainer(db, appLogger, appMetrics)

	router := httpadapter.SetupRouter(httpadapter.HandlersConfig{
		HealthHandler: container.HealthHandler,
		TaskHandler:   container.TaskHandler,
	}, appMetrics, appLogger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		appLogger.Info().Str("port", cfg.Port).Str("environment", cfg.Environment).Msg("Server running")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("Server shutdown failed")
	}

	if err := db.Close(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("MongoDB disconnect failed")
	}
}
