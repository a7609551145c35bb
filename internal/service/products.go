package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/storefront-service/internal/circuitbreaker"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/metrics"
	"github.com/guttosm/storefront-service/internal/productsource"
	"github.com/guttosm/storefront-service/internal/service/cache"
)

// Catalog provides read access to the product collection. The query
// engine consumes its output as an already-resolved snapshot; loading
// and staleness policy live here, not in the engine.
type Catalog interface {
	// Products returns the full product collection.
	Products(ctx context.Context) ([]model.Product, error)
	// Categories returns the catalog's category labels.
	Categories(ctx context.Context) ([]string, error)
	// ProductByID returns one product, or (nil, nil) when absent.
	ProductByID(ctx context.Context, id int) (*model.Product, error)
}

// listCache caches the full product collection and the category list
// behind atomic loads, so renders read a consistent snapshot without
// taking a lock.
type listCache struct {
	products   atomic.Value // holds []model.Product
	categories atomic.Value // holds []string
	// Products and categories expire independently: either may be fetched
	// first, and one going stale must not invalidate the other.
	expiresAt    atomic.Value // holds time.Time
	catExpiresAt atomic.Value // holds time.Time
	mu           sync.Mutex
	ttl          time.Duration
}

// CatalogOption configures a CatalogService.
type CatalogOption func(*CatalogService)

// WithListTTL sets how long the fetched product collection stays fresh.
func WithListTTL(ttl time.Duration) CatalogOption {
	return func(s *CatalogService) {
		s.list.ttl = ttl
	}
}

// WithProductCache enables per-id product caching with the given capacity and TTL.
func WithProductCache(capacity int, ttl time.Duration) CatalogOption {
	return func(s *CatalogService) {
		if capacity > 0 {
			s.byID = newTTLCache(capacity, ttl)
		}
	}
}

// WithShardedProductCache enables a sharded per-id cache for high-traffic setups.
func WithShardedProductCache(capacity int, ttl time.Duration, shards int) CatalogOption {
	return func(s *CatalogService) {
		if capacity > 0 {
			s.byID = NewShardedCache(capacity, ttl, shards)
		}
	}
}

// WithCircuitBreaker protects source fetches with the given breaker.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) CatalogOption {
	return func(s *CatalogService) {
		s.breaker = cb
	}
}

// CatalogService implements Catalog over a remote product source, with a
// TTL cache for the full collection, an optional per-id LRU cache and an
// optional circuit breaker. When the collection cache is warm an open
// circuit degrades to the stale snapshot instead of failing the render.
type CatalogService struct {
	source  productsource.Source
	list    listCache
	byID    cache.Cache
	breaker *circuitbreaker.CircuitBreaker
}

// NewCatalogService creates a catalog service over the given source.
func NewCatalogService(source productsource.Source, opts ...CatalogOption) *CatalogService {
	s := &CatalogService{source: source}
	s.list.ttl = 5 * time.Minute
	s.list.expiresAt.Store(time.Time{})
	s.list.catExpiresAt.Store(time.Time{})
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Products returns the product collection, from cache when fresh.
func (s *CatalogService) Products(ctx context.Context) ([]model.Product, error) {
	if products := s.cachedProducts(false); products != nil {
		return products, nil
	}

	var fetched []model.Product
	err := s.execute(ctx, func() error {
		var fetchErr error
		fetched, fetchErr = s.source.FetchProducts(ctx)
		return fetchErr
	})
	if err != nil {
		// Serve the stale snapshot, if any, rather than an empty storefront.
		if products := s.cachedProducts(true); products != nil {
			return products, nil
		}
		return nil, err
	}

	s.storeProducts(fetched)
	return fetched, nil
}

// Categories returns the category labels, from cache when fresh.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	if cats := s.cachedCategories(false); cats != nil {
		return cats, nil
	}

	var fetched []string
	err := s.execute(ctx, func() error {
		var fetchErr error
		fetched, fetchErr = s.source.FetchCategories(ctx)
		return fetchErr
	})
	if err != nil {
		if cats := s.cachedCategories(true); cats != nil {
			return cats, nil
		}
		return nil, err
	}

	s.storeCategories(fetched)
	return fetched, nil
}

// ProductByID returns one product. Absent products are (nil, nil).
func (s *CatalogService) ProductByID(ctx context.Context, id int) (*model.Product, error) {
	if s.byID != nil {
		if p, ok := s.byID.Get(id); ok {
			return &p, nil
		}
	}

	var fetched *model.Product
	err := s.execute(ctx, func() error {
		var fetchErr error
		fetched, fetchErr = s.source.FetchProductByID(ctx, id)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	if fetched == nil {
		return nil, nil
	}

	if s.byID != nil {
		s.byID.Set(id, *fetched)
	}
	return fetched, nil
}

// Invalidate drops all cached catalog data.
func (s *CatalogService) Invalidate() {
	s.list.expiresAt.Store(time.Time{})
	s.list.catExpiresAt.Store(time.Time{})
	if s.byID != nil {
		s.byID.Clear()
	}
}

// Close releases cache resources.
func (s *CatalogService) Close() {
	if s.byID != nil {
		s.byID.Stop()
	}
}

// execute runs fn through the circuit breaker when one is configured.
func (s *CatalogService) execute(ctx context.Context, fn func() error) error {
	if s.breaker == nil {
		return fn()
	}
	return s.breaker.Execute(ctx, fn)
}

// cachedProducts returns the cached collection. With allowStale it ignores
// the TTL, used as the degraded path when the source is unreachable.
func (s *CatalogService) cachedProducts(allowStale bool) []model.Product {
	if !allowStale && !s.listFresh() {
		return nil
	}
	if v := s.list.products.Load(); v != nil {
		if products, ok := v.([]model.Product); ok {
			metrics.RecordCacheOperation("list_get", "hit")
			return products
		}
	}
	return nil
}

func (s *CatalogService) cachedCategories(allowStale bool) []string {
	if !allowStale && !s.categoriesFresh() {
		return nil
	}
	if v := s.list.categories.Load(); v != nil {
		if cats, ok := v.([]string); ok {
			return cats
		}
	}
	return nil
}

func (s *CatalogService) listFresh() bool {
	if v := s.list.expiresAt.Load(); v != nil {
		if expiresAt, ok := v.(time.Time); ok {
			return time.Now().Before(expiresAt)
		}
	}
	return false
}

func (s *CatalogService) categoriesFresh() bool {
	if v := s.list.catExpiresAt.Load(); v != nil {
		if expiresAt, ok := v.(time.Time); ok {
			return time.Now().Before(expiresAt)
		}
	}
	return false
}

// storeProducts refreshes the collection cache. A double-check under the
// lock avoids two concurrent fetches fighting over the expiry.
func (s *CatalogService) storeProducts(products []model.Product) {
	s.list.mu.Lock()
	defer s.list.mu.Unlock()
	s.list.products.Store(products)
	s.list.expiresAt.Store(time.Now().Add(s.list.ttl))
	metrics.RecordCacheOperation("list_set", "success")
}

// storeCategories refreshes the category cache and its own expiry.
func (s *CatalogService) storeCategories(cats []string) {
	s.list.mu.Lock()
	defer s.list.mu.Unlock()
	s.list.categories.Store(cats)
	s.list.catExpiresAt.Store(time.Now().Add(s.list.ttl))
}
