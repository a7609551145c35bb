// Package main is the entry point for the storefront-service application.
//
// @title           Storefront Service API
// @version         1.0.0
// @description     API for browsing a product catalog and managing a shopping cart.
//
//	Each client gets a private browse session (filters, search, sort, paging)
//	and cart, identified by the X-Session-ID header.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/storefront-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Catalog
// @tag.description Product catalog browsing operations
//
// @tag.name        Browse
// @tag.description Session filter, search, sort and paging operations
//
// @tag.name        Cart
// @tag.description Shopping cart operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/storefront-service/docs" // swagger docs

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
