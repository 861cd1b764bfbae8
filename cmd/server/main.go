package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/statikk/ddmirror/internal/api"
	"github.com/statikk/ddmirror/internal/config"
	"github.com/statikk/ddmirror/internal/datadragon"
	"github.com/statikk/ddmirror/internal/repository/postgres"
	"github.com/statikk/ddmirror/internal/service"
	"github.com/statikk/ddmirror/internal/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Initialize repositories
	repos := postgres.NewRepositories(db)

	// Initialize upstream client and background runner
	dragon := datadragon.NewClient(cfg)
	runner := task.NewGoRunner()

	// Initialize services
	services := service.NewServices(repos, dragon, runner)

	// Periodic full sync
	scheduler := service.NewScheduler(services.Sync, time.Duration(cfg.SyncIntervalHours)*time.Hour)
	scheduler.Start()

	// Initialize router
	router := api.NewRouter(services)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	scheduler.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	// Let in-flight background syncs finish before exiting
	runner.Wait()

	log.Println("Server stopped")
}
