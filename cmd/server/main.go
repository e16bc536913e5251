package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimgiray/tzroster/internal/clock"
	"github.com/alimgiray/tzroster/internal/handlers"
	"github.com/alimgiray/tzroster/internal/repositories"
	"github.com/alimgiray/tzroster/internal/services"
	"github.com/alimgiray/tzroster/internal/workers"
	"github.com/alimgiray/tzroster/pkg/config"
	"github.com/alimgiray/tzroster/pkg/database"
	"github.com/alimgiray/tzroster/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level)

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize database
	if err := database.Init(cfg.Database.Path); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	systemClock := clock.NewSystem()
	kvRepo := repositories.NewKVRepository(database.DB)
	rosterRepo := repositories.NewRosterRepository(kvRepo, cfg.Roster.Key)
	clockService := services.NewClockService(systemClock)
	rosterService := services.NewRosterService(rosterRepo, clockService)
	exportService := services.NewExportService(rosterService)

	// Missing or unreadable data starts an empty roster
	if err := rosterService.Load(); err != nil {
		logger.WithError(err).Warn("Continuing with an empty roster")
	}

	// Initialize worker manager
	clockWorker := workers.NewClockWorker("clock-1", rosterService, systemClock, cfg.Roster.TickInterval)
	workerManager := workers.NewWorkerManager()
	workerManager.Register(clockWorker)

	logger.WithFields(logrus.Fields{
		"roster_key":    rosterRepo.Key(),
		"people":        rosterService.Len(),
		"tick_interval": clockWorker.Interval().String(),
	}).Info("Roster ready")

	if err := workerManager.StartAll(); err != nil {
		logger.Fatalf("Failed to start workers: %v", err)
	}
	defer workerManager.StopAll()

	router := handlers.NewRouter(
		handlers.NewRosterHandler(rosterService, exportService),
		handlers.NewHealthHandler(workerManager, rosterService),
	)

	// Setup server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Infof("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}
	logger.Info("Server stopped")
}
