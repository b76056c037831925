package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"garabato-api/internal/config"
	"garabato-api/internal/handler"
	"garabato-api/internal/paypal"
	"garabato-api/internal/repository"
	"garabato-api/internal/router"
	"garabato-api/internal/service"
)

//	@title			Garabato Store API
//	@version		1.0
//	@description	Product catalogue and PayPal checkout backend for the Señora Garabato store.
//	@BasePath		/
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().
		Str("environment", cfg.App.Environment).
		Bool("debug", cfg.App.Debug).
		Msg("starting garabato API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize catalogue repository. A missing or unreadable file is not
	// fatal: every catalogue request will keep failing with a structured
	// error until the file exists, matching the store's contract.
	catalogRepo := repository.NewCatalogRepository(cfg.Catalog.File, logger)
	if _, err := catalogRepo.GetAll(ctx); err != nil {
		logger.Warn().
			Err(err).
			Str("file", cfg.Catalog.File).
			Msg("catalogue file is not readable; catalogue requests will fail until it exists")
	}

	// Initialize services and the payment gateway client
	productService := service.NewProductService(catalogRepo, logger)
	paypalClient := paypal.NewClient(cfg.PayPal, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	paypalHandler := handler.NewPayPalHandler(paypalClient, logger)

	// Initialize router
	mux := router.New(productHandler, paypalHandler, cfg.Admin, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
