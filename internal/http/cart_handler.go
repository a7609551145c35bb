package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/guttosm/storefront-service/internal/middleware"
	"github.com/guttosm/storefront-service/internal/service"
)

// CartHandler provides HTTP handlers for cart routes. Every mutation
// responds with the full updated cart state.
type CartHandler struct {
	catalog  service.Catalog
	sessions *service.SessionManager
}

// NewCartHandler creates a new CartHandler instance.
func NewCartHandler(catalog service.Catalog, sessions *service.SessionManager) *CartHandler {
	return &CartHandler{
		catalog:  catalog,
		sessions: sessions,
	}
}

func (h *CartHandler) session(c *gin.Context) *service.Session {
	return h.sessions.Get(c.Request.Context(), middleware.GetSessionID(c))
}

// auditCart records a cart action when audit logging is enabled.
func (h *CartHandler) auditCart(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, actionType, message, fields)
		}
	}
}

// GetCart handles GET /api/cart requests.
//
// @Summary      Get the cart
// @Description  Returns the session's current cart state: the line list plus the running quantity and amount totals.
// @Tags         Cart
// @Produce      json
// @Param        X-Session-ID header string false "Session identifier"
// @Success      200 {object} dto.SuccessResponse{data=model.CartState} "Current cart state"
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	builder := NewResponseBuilder(c)
	builder.SuccessOK(h.session(c).Cart.Snapshot())
}

// AddItem handles POST /api/cart/items requests.
//
// @Summary      Add a product to the cart
// @Description  Adds one unit of the product: a new line with quantity 1, or one more unit on the existing line. The product is resolved through the catalog first; unknown ids are a 404. Supports idempotency via Idempotency-Key header.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Session identifier"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.AddCartItemRequest true "Product to add"
// @Success      200 {object} dto.SuccessResponse{data=model.CartState} "Updated cart state"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid product id"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      502 {object} dto.ErrorResponse "Product source unreachable"
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AddCartItemRequest](c)
	if err != nil {
		if errors.Is(err, dto.ErrInvalidProductID) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationProductID, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	product, err := h.catalog.ProductByID(c.Request.Context(), req.ProductID)
	if err != nil {
		builder.Error(http.StatusBadGateway, i18n.ErrKeyCatalogUnavailable, err)
		return
	}
	if product == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, nil)
		return
	}

	h.auditCart(c, "cart.add", "Product added to cart", map[string]interface{}{
		"product_id": product.ID,
		"title":      product.Title,
	})

	builder.SuccessOK(h.session(c).Cart.Add(*product))
}

// UpdateItemQuantity handles PUT /api/cart/items/:id requests.
//
// @Summary      Set a cart line quantity
// @Description  Sets the quantity of the line for the given product id. A quantity of 0 removes the line, negative quantities are rejected, absent lines are a no-op.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Session identifier"
// @Param        id path int true "Product id"
// @Param        request body dto.UpdateQuantityRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse{data=model.CartState} "Updated cart state"
// @Failure      400 {object} dto.ErrorResponse "Bad request - negative quantity"
// @Router       /api/cart/items/{id} [put]
func (h *CartHandler) UpdateItemQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationProductID, err)
		return
	}

	req, err := BuildRequestAndValidate[dto.UpdateQuantityRequest](c)
	if err != nil {
		if errors.Is(err, dto.ErrNegativeQuantity) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationQuantity, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	state, err := h.session(c).Cart.UpdateQuantity(id, *req.Quantity)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationQuantity, err)
		return
	}

	h.auditCart(c, "cart.update_quantity", "Cart line quantity updated", map[string]interface{}{
		"product_id": id,
		"quantity":   *req.Quantity,
	})

	builder.SuccessOK(state)
}

// RemoveItem handles DELETE /api/cart/items/:id requests.
//
// @Summary      Remove a cart line
// @Description  Removes the full line for the given product id, whatever its quantity. Absent lines are a no-op.
// @Tags         Cart
// @Produce      json
// @Param        X-Session-ID header string false "Session identifier"
// @Param        id path int true "Product id"
// @Success      200 {object} dto.SuccessResponse{data=model.CartState} "Updated cart state"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid id"
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationProductID, err)
		return
	}

	h.auditCart(c, "cart.remove", "Cart line removed", map[string]interface{}{
		"product_id": id,
	})

	builder.SuccessOK(h.session(c).Cart.Remove(id))
}

// ClearCart handles DELETE /api/cart requests.
//
// @Summary      Clear the cart
// @Description  Resets the cart to the empty state unconditionally.
// @Tags         Cart
// @Produce      json
// @Param        X-Session-ID header string false "Session identifier"
// @Success      200 {object} dto.SuccessResponse{data=model.CartState} "Empty cart state"
// @Router       /api/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	h.auditCart(c, "cart.clear", "Cart cleared", nil)

	builder.SuccessOK(h.session(c).Cart.Clear())
}
