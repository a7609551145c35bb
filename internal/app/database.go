// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/circuitbreaker"
	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/guttosm/storefront-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	CartRepo            repository.CartRepositoryInterface
	LoggingService      service.LoggingService
	CartsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker  *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails; the service then
// runs with in-memory sessions only and no request log persistence.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	logsTTLDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), logsTTLDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Set TTL for abandoned cart snapshots
	cartsTTLDays := int(cfg.CartsTTL.Hours() / 24)
	if err := db.SetCartsTTL(context.Background(), cartsTTLDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set carts TTL index (may already exist)")
	}

	// Initialize circuit breakers
	cartsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-carts",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	cartRepo := repository.NewCartRepository(db)
	cartRepoWithCB := repository.NewCartRepositoryWithCircuitBreaker(cartRepo, cartsCB)

	return &DatabaseComponents{
		CartRepo:            cartRepoWithCB,
		LoggingService:      loggingService,
		CartsCircuitBreaker: cartsCB,
		LogsCircuitBreaker:  logsCB,
	}
}
