// Package config provides configuration management for the storefront service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Session  SessionConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// CatalogConfig holds product source and catalog cache configuration.
type CatalogConfig struct {
	SourceURL    string
	FetchTimeout time.Duration
	// ListTTL is how long the full product collection stays fresh.
	ListTTL time.Duration
	// CacheSize and CacheTTL control the per-product lookup cache.
	CacheSize   int
	CacheTTL    time.Duration
	CacheShards int
}

// SessionConfig holds browse session configuration.
type SessionConfig struct {
	// PageSize is the number of products rendered per result page.
	PageSize int
	// TTL is how long an idle session survives before eviction.
	TTL time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	CartsTTL     time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
		},
		Catalog: CatalogConfig{
			SourceURL:    getEnv("PRODUCT_SOURCE_URL", "https://fakestoreapi.com"),
			FetchTimeout: getEnvDuration("PRODUCT_FETCH_TIMEOUT", 10*time.Second),
			ListTTL:      getEnvDuration("CATALOG_LIST_TTL", 5*time.Minute),
			CacheSize:    getEnvInt("CATALOG_CACHE_SIZE", 1000),
			CacheTTL:     getEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute),
			CacheShards:  getEnvInt("CATALOG_CACHE_SHARDS", 16),
		},
		Session: SessionConfig{
			PageSize: getEnvInt("SESSION_PAGE_SIZE", 16),
			TTL:      getEnvDuration("SESSION_TTL", 30*time.Minute),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "storefront_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			CartsTTL:                       getEnvDuration("MONGODB_CARTS_TTL", 14*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
