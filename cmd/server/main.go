// Package main is the entry point for the flight offers gateway service.
//
//	@title						Flight Offers Gateway API
//	@version					1.0.0
//	@description				A gateway service that normalizes flight offer searches against an external flight offers provider.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-search/flight-offers-gateway/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-search/flight-offers-gateway/docs"

	gatewayhttp "github.com/flight-search/flight-offers-gateway/internal/adapter/http"
	"github.com/flight-search/flight-offers-gateway/internal/adapter/http/middleware"
	"github.com/flight-search/flight-offers-gateway/internal/adapter/provider/duffel"
	"github.com/flight-search/flight-offers-gateway/internal/config"
	"github.com/flight-search/flight-offers-gateway/internal/infrastructure/logger"
	"github.com/flight-search/flight-offers-gateway/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-offers-gateway",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("provider_base_url", cfg.Provider.BaseURL).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware (request ID, request logging, panic recovery)
	middleware.Setup(e, log.Logger)

	// Setup routes
	setupRoutes(e, cfg, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupRoutes wires the provider adapter, use case, and HTTP handler.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	client := duffel.NewClient(
		cfg.Provider.BaseURL,
		cfg.Provider.APIToken,
		duffel.WithHTTPClient(&http.Client{Timeout: cfg.Provider.Timeout}),
		duffel.WithLogger(log.WithComponent(duffel.ProviderName).Logger),
	)
	provider := duffel.NewAdapter(client)

	offerUseCase := usecase.NewOfferSearchUseCase(provider, log.WithComponent("usecase").Logger)

	offerHandler := gatewayhttp.NewOfferHandler(offerUseCase, provider.Name())
	gatewayhttp.RegisterRoutes(e, offerHandler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
