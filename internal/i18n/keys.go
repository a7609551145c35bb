// Package i18n provides internationalization support for the storefront service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyProductNotFound indicates the requested product does not exist.
	ErrKeyProductNotFound = "error.product_not_found"
	// ErrKeyCatalogUnavailable indicates the product source is unreachable.
	ErrKeyCatalogUnavailable = "error.catalog_unavailable"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyValidationQuantity indicates an invalid cart quantity.
	ErrKeyValidationQuantity = "error.validation.quantity"
	// ErrKeyValidationProductID indicates an invalid product id.
	ErrKeyValidationProductID = "error.validation.product_id"
	// ErrKeyPageOutOfRange indicates a page request outside the result range.
	ErrKeyPageOutOfRange = "error.page_out_of_range"
	// ErrKeyInvalidDimension indicates an unknown filter dimension.
	ErrKeyInvalidDimension = "error.invalid_dimension"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)
