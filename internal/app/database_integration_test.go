//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database names for each subtest
	uri := getSharedContainerURI()

	t.Run("initialize with enabled database", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			CartsTTL:                       14 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		}

		components := InitializeDatabase(cfg)

		require.NotNil(t, components)
		assert.NotNil(t, components.CartRepo)
		assert.NotNil(t, components.LoggingService)
		assert.NotNil(t, components.CartsCircuitBreaker)
		assert.NotNil(t, components.LogsCircuitBreaker)
	})

	t.Run("initialize with disabled database", func(t *testing.T) {
		t.Parallel()
		cfg := config.DatabaseConfig{
			Enabled: false,
		}

		components := InitializeDatabase(cfg)
		assert.Nil(t, components)
	})

	t.Run("cart repository round trip", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			CartsTTL:                       14 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		}

		components := InitializeDatabase(cfg)
		require.NotNil(t, components)

		state := model.CartState{
			Items: []model.CartItem{
				{Product: model.Product{ID: 1, Title: "Fjallraven Backpack", Price: 109.95}, Quantity: 2},
			},
			TotalQuantity: 2,
			TotalAmount:   219.90,
		}

		require.NoError(t, components.CartRepo.Save(ctx, "app-init-session", state))

		loaded, err := components.CartRepo.Load(ctx, "app-init-session")
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, 2, loaded.TotalQuantity)
		assert.InDelta(t, 219.90, loaded.TotalAmount, 0.001)
	})

	t.Run("circuit breaker integration", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			CartsTTL:                       14 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 2,
			CircuitBreakerSuccessThreshold: 1,
			CircuitBreakerTimeout:          100 * time.Millisecond,
		}

		components := InitializeDatabase(cfg)
		require.NotNil(t, components)

		// Verify circuit breakers are initialized
		stats := components.CartsCircuitBreaker.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.True(t, stats.IsHealthy)

		logsStats := components.LogsCircuitBreaker.GetStats()
		assert.Equal(t, "closed", logsStats.State)
		assert.True(t, logsStats.IsHealthy)
	})
}
