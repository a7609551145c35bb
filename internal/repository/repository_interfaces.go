// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/storefront-service/internal/domain/model"
)

// CartRepositoryInterface defines the interface for cart snapshot operations.
type CartRepositoryInterface interface {
	Load(ctx context.Context, sessionID string) (*model.CartState, error)
	Save(ctx context.Context, sessionID string, state model.CartState) error
	Delete(ctx context.Context, sessionID string) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
