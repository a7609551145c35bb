// Package productsource provides the HTTP client for the remote product catalog.
package productsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/metrics"
)

// Source defines the contract with the remote product catalog. The core
// assumes fetches complete before query logic runs; loading and retry
// policy live behind this boundary, not in the query engine.
type Source interface {
	// FetchProducts returns the full product collection.
	FetchProducts(ctx context.Context) ([]model.Product, error)
	// FetchCategories returns the catalog's category labels.
	FetchCategories(ctx context.Context) ([]string, error)
	// FetchProductByID returns one product, or (nil, nil) when the source
	// reports it absent.
	FetchProductByID(ctx context.Context, id int) (*model.Product, error)
}

// Client fetches products from a fakestore-style REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient injects a custom http.Client (used by tests).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a product source client for the given base URL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchProducts returns the full product collection.
func (c *Client) FetchProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.getJSON(ctx, "/products", &products); err != nil {
		metrics.RecordProductFetch("products", "error")
		return nil, err
	}
	metrics.RecordProductFetch("products", "success")
	return products, nil
}

// FetchCategories returns the catalog's category labels.
func (c *Client) FetchCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getJSON(ctx, "/products/categories", &categories); err != nil {
		metrics.RecordProductFetch("categories", "error")
		return nil, err
	}
	metrics.RecordProductFetch("categories", "success")
	return categories, nil
}

// FetchProductByID returns one product by id. A 404 from the source is
// reported as (nil, nil): absent is a representable result, not an error.
func (c *Client) FetchProductByID(ctx context.Context, id int) (*model.Product, error) {
	var product model.Product
	err := c.getJSON(ctx, fmt.Sprintf("/products/%d", id), &product)
	if err == errNotFound {
		metrics.RecordProductFetch("product_by_id", "not_found")
		return nil, nil
	}
	if err != nil {
		metrics.RecordProductFetch("product_by_id", "error")
		return nil, err
	}
	metrics.RecordProductFetch("product_by_id", "success")
	return &product, nil
}

var errNotFound = fmt.Errorf("product source: not found")

// getJSON performs a GET against the source and decodes the JSON body.
func (c *Client) getJSON(ctx context.Context, path string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("product source: unexpected status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("product source: decoding %s: %w", path, err)
	}
	return nil
}
