// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// AddCartItemRequest represents the JSON request body for adding a product
// to the cart. The product is resolved by id through the catalog before
// the cart is mutated.
//
// @Description Request to add one unit of a product to the cart
// @Example {"product_id": 5}
type AddCartItemRequest struct {
	// ProductID is the catalog identifier of the product to add.
	ProductID int `json:"product_id" binding:"required,gt=0" example:"5" minimum:"1"`
} // @name AddCartItemRequest

// UpdateQuantityRequest represents the JSON request body for setting a cart
// line's quantity. A quantity of 0 removes the line; negative quantities
// are rejected.
//
// @Description Request to set a cart line quantity
// @Example {"quantity": 3}
type UpdateQuantityRequest struct {
	// Quantity is the new quantity for the line. 0 removes the line.
	Quantity *int `json:"quantity" binding:"required" example:"3"`
} // @name UpdateQuantityRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidProductID is returned when product_id is missing or not positive.
	ErrInvalidProductID = &ValidationError{
		Field:   "product_id",
		Message: "must be a positive integer",
	}
	// ErrNegativeQuantity is returned when quantity is negative.
	ErrNegativeQuantity = &ValidationError{
		Field:   "quantity",
		Message: "must not be negative",
	}
	// ErrInvalidPage is returned when page is not positive.
	ErrInvalidPage = &ValidationError{
		Field:   "page",
		Message: "must be a positive integer",
	}
)

// Validate performs custom validation on the request.
func (r *AddCartItemRequest) Validate() error {
	if r.ProductID <= 0 {
		return ErrInvalidProductID
	}
	return nil
}

// Validate performs custom validation on the request.
func (r *UpdateQuantityRequest) Validate() error {
	if r.Quantity == nil || *r.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// SearchRequest sets the session's free-text search.
//
// @Description Request to set the browse search text
type SearchRequest struct {
	// Text is the free-text search applied to title, description and category.
	Text string `json:"text" example:"laptop"`
} // @name SearchRequest

// SortRequest sets the session's sort key.
//
// @Description Request to set the browse sort key
type SortRequest struct {
	// Key selects the comparator: popular, price-low, price-high, rating, newest.
	Key string `json:"key" binding:"required" example:"price-low"`
} // @name SortRequest

// PageRequest moves the session to a specific result page.
//
// @Description Request to change the current result page
type PageRequest struct {
	// Page is the 1-based page number.
	Page int `json:"page" binding:"required" example:"2" minimum:"1"`
} // @name PageRequest

// Validate performs custom validation on the request.
func (r *PageRequest) Validate() error {
	if r.Page <= 0 {
		return ErrInvalidPage
	}
	return nil
}

// FilterToggleRequest toggles a single-choice filter dimension
// (categories, priceRange or tags).
//
// @Description Request to toggle a single-choice filter selection
// @Example {"dimension": "categories", "value": "electronics"}
type FilterToggleRequest struct {
	// Dimension is the filter facet: categories, priceRange or tags.
	Dimension string `json:"dimension" binding:"required" example:"categories"`
	// Value is the selection to toggle.
	Value string `json:"value" binding:"required" example:"electronics"`
} // @name FilterToggleRequest

// BrandToggleRequest includes or excludes one brand in the multi-choice
// brand selection.
//
// @Description Request to toggle one brand filter
// @Example {"brand": "Apple", "included": true}
type BrandToggleRequest struct {
	// Brand is the brand name.
	Brand string `json:"brand" binding:"required" example:"Apple"`
	// Included selects (true) or deselects (false) the brand.
	Included bool `json:"included"`
} // @name BrandToggleRequest

// RemoveChipRequest dismisses one active-filter chip.
//
// @Description Request to remove one active filter value
// @Example {"dimension": "brands", "value": "Apple"}
type RemoveChipRequest struct {
	// Dimension is the filter facet the chip belongs to.
	Dimension string `json:"dimension" binding:"required" example:"brands"`
	// Value is the chip's value.
	Value string `json:"value" binding:"required" example:"Apple"`
} // @name RemoveChipRequest

// PriceSliderRequest commits the two-handle price slider position as the
// sole price-range selection.
//
// @Description Request to commit a price slider position
// @Example {"min": 100, "max": 500}
type PriceSliderRequest struct {
	// Min is the lower handle position.
	Min int `json:"min" minimum:"0" example:"100"`
	// Max is the upper handle position.
	Max int `json:"max" example:"500"`
} // @name PriceSliderRequest
