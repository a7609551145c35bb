package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/guttosm/storefront-service/internal/metrics"
	"github.com/guttosm/storefront-service/internal/middleware"
	"github.com/guttosm/storefront-service/internal/service"
)

// Handler provides HTTP handlers for catalog routes.
type Handler struct {
	catalog  service.Catalog
	sessions *service.SessionManager
}

// NewHandler creates a new Handler instance.
func NewHandler(catalog service.Catalog, sessions *service.SessionManager) *Handler {
	return &Handler{
		catalog:  catalog,
		sessions: sessions,
	}
}

// GetProducts handles GET /api/products requests.
//
// @Summary      Browse products
// @Description  Renders the session's current result page: the product collection filtered by the active filter state and search text, ordered by the active sort key and sliced to the current page. The session is identified by the X-Session-ID header; a missing header starts a fresh session.
// @Tags         Catalog
// @Produce      json
// @Param        X-Session-ID header string false "Session identifier"
// @Success      200 {object} dto.SuccessResponse{data=service.BrowseView} "Current browse view"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      502 {object} dto.ErrorResponse "Product source unreachable"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/products [get]
func (h *Handler) GetProducts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	products, err := h.catalog.Products(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusBadGateway, i18n.ErrKeyCatalogUnavailable, err)
		return
	}

	session := h.sessions.Get(c.Request.Context(), middleware.GetSessionID(c))

	start := time.Now()
	view := session.Browse.View(products)
	metrics.RecordCatalogQuery(time.Since(start), view.Page.TotalResults)

	builder.SuccessOK(view)
}

// GetProductByID handles GET /api/products/:id requests.
//
// @Summary      Get one product
// @Description  Returns a single product by its catalog id.
// @Tags         Catalog
// @Produce      json
// @Param        id path int true "Product id"
// @Success      200 {object} dto.SuccessResponse{data=model.Product} "The product"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid id"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      502 {object} dto.ErrorResponse "Product source unreachable"
// @Router       /api/products/{id} [get]
func (h *Handler) GetProductByID(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationProductID, err)
		return
	}

	product, err := h.catalog.ProductByID(c.Request.Context(), id)
	if err != nil {
		builder.Error(http.StatusBadGateway, i18n.ErrKeyCatalogUnavailable, err)
		return
	}
	if product == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, nil)
		return
	}

	builder.SuccessOK(product)
}

// GetCategories handles GET /api/categories requests.
//
// @Summary      List categories
// @Description  Returns the catalog's category labels.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]string} "Category labels"
// @Failure      502 {object} dto.ErrorResponse "Product source unreachable"
// @Router       /api/categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	builder := NewResponseBuilder(c)

	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusBadGateway, i18n.ErrKeyCatalogUnavailable, err)
		return
	}

	builder.SuccessOK(categories)
}

// GetBrowseOptions handles GET /api/browse/options requests.
//
// @Summary      Filter panel vocabularies
// @Description  Returns the lists the filter panel renders: categories (live from the catalog when reachable, static fallback otherwise), price-range presets, brands and popular tags.
// @Tags         Browse
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=service.BrowseOptions} "Panel vocabularies"
// @Router       /api/browse/options [get]
func (h *Handler) GetBrowseOptions(c *gin.Context) {
	builder := NewResponseBuilder(c)

	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil || len(categories) == 0 {
		categories = service.DefaultCategories()
	}

	builder.SuccessOK(service.BrowseOptions{
		Categories:  categories,
		PriceRanges: service.DefaultPriceRangePresets(),
		Brands:      service.DefaultBrands(),
		Tags:        service.DefaultTags(),
	})
}
