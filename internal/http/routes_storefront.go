package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/service"
)

// StorefrontRoutes registers the catalog, browse and cart route groups.
type StorefrontRoutes struct {
	handler       *Handler
	browseHandler *BrowseHandler
	cartHandler   *CartHandler
}

// NewStorefrontRoutes creates a new StorefrontRoutes instance.
func NewStorefrontRoutes(catalog service.Catalog, sessions *service.SessionManager) *StorefrontRoutes {
	return &StorefrontRoutes{
		handler:       NewHandler(catalog, sessions),
		browseHandler: NewBrowseHandler(catalog, sessions),
		cartHandler:   NewCartHandler(catalog, sessions),
	}
}

// RegisterRoutes registers every storefront route on the API group.
func (r *StorefrontRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.GET("/products", r.handler.GetProducts)
	rg.GET("/products/:id", r.handler.GetProductByID)
	rg.GET("/categories", r.handler.GetCategories)

	browse := rg.Group("/browse")
	{
		browse.GET("/options", r.handler.GetBrowseOptions)
		browse.PUT("/search", r.browseHandler.SetSearch)
		browse.PUT("/sort", r.browseHandler.SetSort)
		browse.PUT("/page", r.browseHandler.SetPage)
		browse.PUT("/filters", r.browseHandler.ToggleFilter)
		browse.DELETE("/filters", r.browseHandler.RemoveChip)
		browse.DELETE("/filters/all", r.browseHandler.ClearFilters)
		browse.PUT("/filters/brands", r.browseHandler.ToggleBrand)
		browse.PUT("/filters/price-slider", r.browseHandler.MoveSlider)
	}

	cart := rg.Group("/cart")
	{
		cart.GET("", r.cartHandler.GetCart)
		cart.DELETE("", r.cartHandler.ClearCart)
		cart.POST("/items", r.cartHandler.AddItem)
		cart.PUT("/items/:id", r.cartHandler.UpdateItemQuantity)
		cart.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}
}

// GetHandler returns the underlying catalog handler.
func (r *StorefrontRoutes) GetHandler() *Handler {
	return r.handler
}
