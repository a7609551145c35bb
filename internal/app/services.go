// Package app provides service initialization.
package app

import (
	"time"

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/circuitbreaker"
	"github.com/guttosm/storefront-service/internal/productsource"
	"github.com/guttosm/storefront-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog               *service.CatalogService
	CatalogCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeServices initializes the catalog service over the remote
// product source, with caches and a circuit breaker sized from config.
func InitializeServices(cfg config.CatalogConfig) *ServiceComponents {
	source := productsource.NewClient(cfg.SourceURL,
		productsource.WithTimeout(cfg.FetchTimeout),
	)

	catalogCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "product-source",
	})

	opts := []service.CatalogOption{
		service.WithCircuitBreaker(catalogCB),
	}

	if cfg.ListTTL > 0 {
		opts = append(opts, service.WithListTTL(cfg.ListTTL))
	}

	if cfg.CacheSize > 0 {
		if cfg.CacheShards > 1 {
			opts = append(opts, service.WithShardedProductCache(cfg.CacheSize, cfg.CacheTTL, cfg.CacheShards))
		} else {
			opts = append(opts, service.WithProductCache(cfg.CacheSize, cfg.CacheTTL))
		}
	}

	catalog := service.NewCatalogService(source, opts...)

	return &ServiceComponents{
		Catalog:               catalog,
		CatalogCircuitBreaker: catalogCB,
	}
}
