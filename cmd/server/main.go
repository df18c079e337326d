package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nextflix/internal/config"
	"nextflix/internal/container"
	"nextflix/internal/handlers"
	"nextflix/internal/logger"
	"nextflix/internal/middleware"

	"github.com/joho/godotenv"
)

func main() {
	logger.Init()
	log := logger.Get()

	if err := godotenv.Load(".env.local"); err != nil {
		log.Info("No .env file found, using system environment variables")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	c, err := container.New(ctx)
	cancel()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize application")
	}
	defer c.Close()

	port, corsOrigins := config.ServerConfig()
	rps, burst := config.RateLimitConfig()
	limiter := middleware.NewRateLimiter(rps, burst)
	defer limiter.Stop()

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handlers.NewRouter(c, corsOrigins, limiter),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	go func() {
		log.Infof("Server starting on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}
}
