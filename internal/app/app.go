// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize business services (catalog client, caches, circuit breaker)
	serviceComponents := InitializeServices(cfg.Catalog)

	// Initialize database components (MongoDB repositories and services)
	dbComponents := InitializeDatabase(cfg.Database)

	// Initialize router components (session manager, handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(routerComponents.HealthHandler, routerComponents.Config)
}
