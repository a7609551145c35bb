package model

// CartItem is one product line in a cart together with its quantity.
// Invariant: quantity >= 1 while the line exists; a quantity that would
// reach 0 deletes the line instead.
//
// @Description Cart line item
type CartItem struct {
	Product `bson:",inline"`
	// Quantity is the number of units of this product in the cart (>= 1)
	Quantity int `json:"quantity" bson:"quantity" example:"2"`
}

// LineTotal returns price * quantity for this line.
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// CartState is a serializable snapshot of a cart: the ordered line items
// (insertion order) plus derived totals. TotalQuantity and TotalAmount are
// maintained incrementally by the cart store but are always exactly
// recomputable from the items.
//
// @Description Cart snapshot with derived totals
type CartState struct {
	// Items are the cart lines in insertion order
	Items []CartItem `json:"items" bson:"items"`
	// TotalQuantity is the sum of all line quantities
	TotalQuantity int `json:"total_quantity" bson:"total_quantity" example:"3"`
	// TotalAmount is the sum of price * quantity over all lines
	TotalAmount float64 `json:"total_amount" bson:"total_amount" example:"149.85"`
}

// EmptyCart returns the initial empty cart state.
func EmptyCart() CartState {
	return CartState{Items: []CartItem{}}
}

// RecomputedTotals derives totals from the line items alone, ignoring the
// stored counters. Used to verify the incrementally maintained totals.
func (s CartState) RecomputedTotals() (quantity int, amount float64) {
	for _, item := range s.Items {
		quantity += item.Quantity
		amount += item.LineTotal()
	}
	return quantity, amount
}

// Clone returns a deep copy of the cart state so callers can never alias
// the store's internal slice.
func (s CartState) Clone() CartState {
	items := make([]CartItem, len(s.Items))
	copy(items, s.Items)
	return CartState{
		Items:         items,
		TotalQuantity: s.TotalQuantity,
		TotalAmount:   s.TotalAmount,
	}
}
