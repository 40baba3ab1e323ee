package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/isdelr/admin-auth-be/internal/api"
	"github.com/isdelr/admin-auth-be/internal/auth"
	"github.com/isdelr/admin-auth-be/internal/config"
	"github.com/isdelr/admin-auth-be/internal/logger"
	"github.com/isdelr/admin-auth-be/internal/services"
	"github.com/rs/zerolog/log"
)

func main() {
	// Pick up a local .env before reading configuration
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "warn: failed to load .env: %v\n", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.LogLevel, cfg.IsProduction())

	// Set up the admin account
	hasher, err := auth.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize password hasher")
	}
	account, err := services.BuildAccount(cfg, hasher)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up admin account")
	}

	// Set up services
	credentialService := services.NewCredentialService(account, hasher, cfg.MaxConcurrentHashes)

	// Set up router
	router := api.NewRouter(credentialService, cfg.CORSAllowedOrigins)

	// Set up server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      35 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Str("env", cfg.Env).Msg("Auth API starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
