// Package repository provides data access for cart snapshots.
package repository

import (
	"context"
	"time"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CartDocument is the persisted form of one session's cart: the flat line
// list plus the derived totals, exactly the store's snapshot shape.
type CartDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID     string             `bson:"session_id" json:"session_id"`
	Items         []model.CartItem   `bson:"items" json:"items"`
	TotalQuantity int                `bson:"total_quantity" json:"total_quantity"`
	TotalAmount   float64            `bson:"total_amount" json:"total_amount"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// CartRepository provides methods for cart snapshot operations.
type CartRepository struct {
	collection *mongo.Collection
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(db *MongoDB) *CartRepository {
	return &CartRepository{
		collection: db.Carts,
	}
}

// Load returns the persisted cart snapshot for a session, or (nil, nil)
// when the session has no saved cart.
func (r *CartRepository) Load(ctx context.Context, sessionID string) (*model.CartState, error) {
	var doc CartDocument
	err := r.collection.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items := doc.Items
	if items == nil {
		items = []model.CartItem{}
	}
	return &model.CartState{
		Items:         items,
		TotalQuantity: doc.TotalQuantity,
		TotalAmount:   doc.TotalAmount,
	}, nil
}

// Save upserts the session's cart snapshot. Every cart mutation overwrites
// the whole document; the snapshot is small and the write stays atomic.
func (r *CartRepository) Save(ctx context.Context, sessionID string, state model.CartState) error {
	update := bson.M{
		"$set": bson.M{
			"session_id":     sessionID,
			"items":          state.Items,
			"total_quantity": state.TotalQuantity,
			"total_amount":   state.TotalAmount,
			"updated_at":     time.Now(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{"session_id": sessionID}, update, opts)
	return err
}

// Delete removes the session's cart snapshot (no-op when absent).
func (r *CartRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"session_id": sessionID})
	return err
}
