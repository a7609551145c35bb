package model

// SortKey selects the comparator applied as the final query stage.
type SortKey string

const (
	// SortPopular orders by descending review count (the default).
	SortPopular SortKey = "popular"
	// SortPriceLow orders by ascending price.
	SortPriceLow SortKey = "price-low"
	// SortPriceHigh orders by descending price.
	SortPriceHigh SortKey = "price-high"
	// SortRating orders by descending average rating.
	SortRating SortKey = "rating"
	// SortNewest orders by descending product id.
	SortNewest SortKey = "newest"
)

// ParseSortKey maps a wire-level sort key to a known comparator.
// Unrecognized keys fall back to SortPopular rather than erroring.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortPriceLow, SortPriceHigh, SortRating, SortNewest, SortPopular:
		return k
	default:
		return SortPopular
	}
}
