package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/guttosm/storefront-service/internal/middleware"
	"github.com/guttosm/storefront-service/internal/service"
)

// BrowseHandler provides HTTP handlers for browse session mutations.
// Every mutation responds with the updated browse view rendered against
// the current product snapshot.
type BrowseHandler struct {
	catalog  service.Catalog
	sessions *service.SessionManager
}

// NewBrowseHandler creates a new BrowseHandler instance.
func NewBrowseHandler(catalog service.Catalog, sessions *service.SessionManager) *BrowseHandler {
	return &BrowseHandler{
		catalog:  catalog,
		sessions: sessions,
	}
}

// session resolves the caller's session from the request context.
func (h *BrowseHandler) session(c *gin.Context) *service.Session {
	return h.sessions.Get(c.Request.Context(), middleware.GetSessionID(c))
}

// respondWithView renders the session against a fresh product snapshot.
func (h *BrowseHandler) respondWithView(c *gin.Context, builder *ResponseBuilder, session *service.Session) {
	products, err := h.catalog.Products(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusBadGateway, i18n.ErrKeyCatalogUnavailable, err)
		return
	}
	builder.SuccessOK(session.Browse.View(products))
}

// SetSearch handles PUT /api/browse/search requests.
//
// @Summary      Set the search text
// @Description  Replaces the session's free-text search and returns to page 1. The text matches product title, description and category as a case-insensitive substring.
// @Tags         Browse
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Session identifier"
// @Param        request body dto.SearchRequest true "Search text"
// @Success      200 {object} dto.SuccessResponse{data=service.BrowseView} "Updated browse view"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid body"
// @Router       /api/browse/search [put]
func (h *BrowseHandler) SetSearch(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.SearchRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	session := h.session(c)
	session.Browse.SetSearch(req.Text)
	h.respondWithView(c, builder, session)
}

// SetSort handles PUT /api/browse/sort requests.
//
// @Summary      Set the sort key
// @Description  Replaces the session's sort key and returns to page 1. Unrecognized keys fall back to popularity.
// @Tags         Browse
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Session identifier"
// @Param        request body dto.SortRequest true "Sort key"
// @Success      200 {object} dto.SuccessResponse{data=service.BrowseView} "Updated browse view"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid body"
// @Router       /api/browse/sort [put]
func (h *BrowseHandler) SetSort(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.SortRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	session := h.session(c)
	session.Browse.SetSort(model.ParseSortKey(req.Key))
	h.respondWithView(c, builder, session)
}

// SetPage handles PUT /api/browse/page requests.
//
// @Summary      Change the current page
// @Description  Moves the session to the requested result page. Pages outside [1, total_pages] of the current result set are rejected and leave the page unchanged.
// @Tags         Browse
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Session identifier"
// @Param        request body dto.PageRequest true "Page number"
// @Success      200 {object} dto.SuccessResponse{data=service.BrowseView} "Updated browse view"
// @Failure      400 {object} dto.ErrorResponse "Bad request - page out of range"
// @Failure      502 {object} dto.ErrorResponse "Product source unreachable"
// @Router       /api/browse/page [put]
func (h *BrowseHandler) SetPage(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.PageRequest](c)
	if err != nil {
		if errors.Is(err, dto.ErrInvalidPage) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyPageOutOfRange, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	products, err := h.catalog.Products(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusBadGateway, i18n.ErrKeyCatalogUnavailable, err)
		return
	}

	session := h.session(c)
	if err := session.Browse.SetPage(req.Page, products); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyPageOutOfRange, err)
		return
	}

	builder.SuccessOK(session.Browse.View(products))
}

// ToggleFilter handles PUT /api/browse/filters requests.
//
// @Summary      Toggle a single-choice filter
// @Description  Applies toggle semantics to the categories, priceRange or tags dimension: re-selecting the active value clears it, any other value replaces it. Returns to page 1.
// @Tags         Browse
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Session identifier"
// @Param        request body dto.FilterToggleRequest true "Dimension and value"
// @Success      200 {object} dto.SuccessResponse{data=service.BrowseView} "Updated browse view"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown dimension"
// @Router       /api/browse/filters [put]
func (h *BrowseHandler) ToggleFilter(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.FilterToggleRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	dimension, err := model.ParseDimension(req.Dimension)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidDimension, err)
		return
	}

	session := h.session(c)
	if err := session.Browse.ToggleFilter(dimension, req.Value); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidDimension, err)
		return
	}

	h.respondWithView(c, builder, session)
}

// ToggleBrand handles PUT /api/browse/filters/brands requests.
//
// @Summary      Toggle a brand filter
// @Description  Includes or excludes one brand independently of the other selected brands. Returns to page 1.
// @Tags         Browse
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Session identifier"
// @Param        request body dto.BrandToggleRequest true "Brand and inclusion flag"
// @Success      200 {object} dto.SuccessResponse{data=service.BrowseView} "Updated browse view"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid body"
// @Router       /api/browse/filters/brands [put]
func (h *BrowseHandler) ToggleBrand(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.BrandToggleRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	session := h.session(c)
	session.Browse.ToggleBrand(req.Brand, req.Included)
	h.respondWithView(c, builder, session)
}

// RemoveChip handles DELETE /api/browse/filters requests.
//
// @Summary      Remove one active filter
// @Description  Dismisses one active-filter chip: removes exactly one value from one dimension. Absent values are a no-op. Returns to page 1.
// @Tags         Browse
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Session identifier"
// @Param        request body dto.RemoveChipRequest true "Dimension and value"
// @Success      200 {object} dto.SuccessResponse{data=service.BrowseView} "Updated browse view"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown dimension"
// @Router       /api/browse/filters [delete]
func (h *BrowseHandler) RemoveChip(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.RemoveChipRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	dimension, err := model.ParseDimension(req.Dimension)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidDimension, err)
		return
	}

	session := h.session(c)
	if err := session.Browse.RemoveChip(dimension, req.Value); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidDimension, err)
		return
	}

	h.respondWithView(c, builder, session)
}

// ClearFilters handles DELETE /api/browse/filters/all requests.
//
// @Summary      Clear all filters
// @Description  Drops every active filter selection. Search text and sort key are kept. Returns to page 1.
// @Tags         Browse
// @Produce      json
// @Param        X-Session-ID header string false "Session identifier"
// @Success      200 {object} dto.SuccessResponse{data=service.BrowseView} "Updated browse view"
// @Router       /api/browse/filters/all [delete]
func (h *BrowseHandler) ClearFilters(c *gin.Context) {
	builder := NewResponseBuilder(c)

	session := h.session(c)
	session.Browse.ClearFilters()
	h.respondWithView(c, builder, session)
}

// MoveSlider handles PUT /api/browse/filters/price-slider requests.
//
// @Summary      Commit the price slider
// @Description  Moves the two-handle price slider to [min, max] and commits the position as the sole price-range selection, replacing any preset. An inverting pair is clamped, not rejected. Returns to page 1.
// @Tags         Browse
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Session identifier"
// @Param        request body dto.PriceSliderRequest true "Handle positions"
// @Success      200 {object} dto.SuccessResponse{data=service.BrowseView} "Updated browse view"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid body"
// @Router       /api/browse/filters/price-slider [put]
func (h *BrowseHandler) MoveSlider(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.PriceSliderRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	session := h.session(c)
	session.Browse.MoveSlider(req.Min, req.Max)
	h.respondWithView(c, builder, session)
}
