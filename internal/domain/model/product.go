// Package model defines the core domain entities for the storefront service.
package model

// Rating holds the aggregate review score for a product.
//
// @Description Aggregate product rating
// @Example {"rate": 4.5, "count": 120}
type Rating struct {
	// Rate is the average review score (0-5)
	Rate float64 `json:"rate" bson:"rate" example:"4.5"`
	// Count is the number of reviews
	Count int `json:"count" bson:"count" example:"120"`
}

// Product represents a single catalog entry as delivered by the product
// source. Products are immutable once fetched.
//
// @Description Catalog product
type Product struct {
	// ID is the unique product identifier
	ID int `json:"id" bson:"id" example:"1"`
	// Title is the display name of the product
	Title string `json:"title" bson:"title" example:"Wireless Headphones"`
	// Price is the unit price (non-negative)
	Price float64 `json:"price" bson:"price" example:"109.95"`
	// Description is the long-form product description
	Description string `json:"description" bson:"description"`
	// Category is the catalog category label
	Category string `json:"category" bson:"category" example:"electronics"`
	// Image is an opaque image reference
	Image string `json:"image" bson:"image"`
	// Rating is the aggregate review score
	Rating Rating `json:"rating" bson:"rating"`
}
