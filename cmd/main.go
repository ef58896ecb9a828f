// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flash_learning/internal/config"
	"flash_learning/internal/logging"
	"flash_learning/internal/repository"
	"flash_learning/internal/router"
	"flash_learning/internal/service"
	"flash_learning/internal/webutil"
)

func main() {
	// Temporary logger until the config is read.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	configPath := os.Getenv("APP_CONFIG_PATH")
	if configPath == "" {
		configPath = "configs"
	}
	if err := config.LoadConfig(configPath); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, config.Cfg.Log.Level, os.Getenv("APP_ENV"))
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("version", config.AppVersion))

	db, err := repository.NewDB(config.Cfg.Database, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	views, err := webutil.NewRenderer()
	if err != nil {
		slog.Error("Error parsing templates", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency injection
	cfg := &config.Cfg
	catalogRepo := repository.NewGormCatalogRepository()
	studentRepo := repository.NewGormStudentRepository()

	r := router.New(cfg, router.Dependencies{
		Navigation: service.NewNavigationService(db, catalogRepo, cfg),
		Students:   service.NewStudentService(db, studentRepo, cfg),
		Tokens:     service.NewTokenService(cfg),
		Views:      views,
		DB:         sqlDB,
		Logger:     logger,
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
