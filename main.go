package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/oviedoj/userbase-be/internal/api"
	"github.com/oviedoj/userbase-be/internal/auth"
	"github.com/oviedoj/userbase-be/internal/config"
	"github.com/oviedoj/userbase-be/internal/logger"
	"github.com/oviedoj/userbase-be/internal/services"
	"github.com/oviedoj/userbase-be/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(zerolog.InfoLevel)
	if cfg.JWTSecret == "" {
		logg.Warn().Msg("JWT_SECRET is empty; tokens are signed with a blank secret")
	}

	// Set up the document store
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	userStore, err := store.NewMongoStore(connectCtx, cfg.MongoURI, cfg.MongoDatabase)
	cancelConnect()
	if err != nil {
		log.Fatalf("Failed to initialize document store: %v", err)
	}

	// Set up services
	userService := services.NewUserService(userStore)
	tokens := auth.NewTokenService(cfg.JWTSecret)

	// Set up router
	router := api.NewRouter(userService, tokens, logg, cfg.IsDevelopment())

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		logg.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logg.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := userStore.Close(ctx); err != nil {
		logg.Error().Err(err).Msg("Failed to disconnect document store")
	}

	logg.Info().Msg("Server exiting")
}
