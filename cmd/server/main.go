package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alimgiray/gfolio/internal/app"
	"github.com/alimgiray/gfolio/internal/handlers"
	"github.com/alimgiray/gfolio/internal/middleware"
	"github.com/alimgiray/gfolio/internal/workers"
	"github.com/alimgiray/gfolio/pkg/config"
	"github.com/alimgiray/gfolio/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize dependencies
	application, err := app.New(cfg)
	if err != nil {
		logger.Fatalf("Failed to initialize: %v", err)
	}
	defer application.Close()

	// Keep the cache warm in the background
	workerManager := workers.NewWorkerManager()
	if ttl := cfg.Portfolio.CacheTTL(); ttl > 0 {
		workerManager.Add(workers.NewCacheWarmWorker("cache-warm-1", application.Portfolio, workers.WarmInterval(ttl)))
	}

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	handlers.SetupRoutes(router,
		handlers.NewPortfolioHandler(application.Portfolio, application.Export),
		handlers.NewHealthHandler(application.Portfolio.Username()),
		handlers.NewNotFoundHandler(),
	)

	if err := workerManager.StartAll(); err != nil {
		logger.Fatalf("Failed to start workers: %v", err)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s for GitHub user %s", cfg.Server.Port, cfg.Portfolio.Username)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}
	workerManager.StopAll()

	logger.Info("Server stopped")
}
