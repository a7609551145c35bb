// Package app provides router configuration.
package app

import (
	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/http"
	"github.com/guttosm/storefront-service/internal/service"
	"github.com/rs/zerolog/log"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Sessions      *service.SessionManager
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes the session manager, HTTP handlers and
// router configuration.
func InitializeRouter(
	serviceComponents *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	sessionOpts := []service.SessionOption{
		service.WithPageSize(cfg.Session.PageSize),
		service.WithSessionTTL(cfg.Session.TTL),
		service.WithSessionNotifications(func(productTitle string) {
			log.Info().Str("product", productTitle).Msg("Added to cart")
		}),
	}

	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		if dbComponents.CartRepo != nil {
			sessionOpts = append(sessionOpts, service.WithCartRepository(dbComponents.CartRepo))
		}
	}

	sessions := service.NewSessionManager(sessionOpts...)

	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if serviceComponents.CatalogCircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("product_source", serviceComponents.CatalogCircuitBreaker)
	}
	if dbComponents != nil {
		if dbComponents.CartsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_carts", dbComponents.CartsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		Catalog:           serviceComponents.Catalog,
		Sessions:          sessions,
	}

	return &RouterComponents{
		Sessions:      sessions,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
