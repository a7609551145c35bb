// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/guttosm/storefront-service/internal/circuitbreaker"
	"github.com/guttosm/storefront-service/internal/domain/model"
)

// CartRepositoryWithCircuitBreaker wraps CartRepository with circuit breaker protection.
// An open circuit degrades to in-memory-only carts: loads report "no snapshot"
// and saves are silently skipped, never an error to the caller.
type CartRepositoryWithCircuitBreaker struct {
	repo           *CartRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCartRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCartRepositoryWithCircuitBreaker(repo *CartRepository, cb *circuitbreaker.CircuitBreaker) *CartRepositoryWithCircuitBreaker {
	return &CartRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Load returns the session's cart snapshot with circuit breaker protection.
func (r *CartRepositoryWithCircuitBreaker) Load(ctx context.Context, sessionID string) (*model.CartState, error) {
	var result *model.CartState
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Load(ctx, sessionID)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - treat as no persisted snapshot
		return nil, nil
	}
	return result, err
}

// Save persists the session's cart snapshot with circuit breaker protection.
func (r *CartRepositoryWithCircuitBreaker) Save(ctx context.Context, sessionID string, state model.CartState) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Save(ctx, sessionID, state)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - skip persistence, the in-memory cart stays authoritative
		return nil
	}
	return err
}

// Delete removes the session's cart snapshot with circuit breaker protection.
func (r *CartRepositoryWithCircuitBreaker) Delete(ctx context.Context, sessionID string) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, sessionID)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new logs repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create inserts a log entry with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Logging is best-effort - drop the entry when the circuit is open
		return nil
	}
	return err
}

// CreateMany inserts log entries in bulk with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query queries log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count counts log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}
