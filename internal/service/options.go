package service

// PriceRangePreset is one entry of the price-range radio list: a display
// label plus the range-token the filter state stores.
type PriceRangePreset struct {
	Label string `json:"label" example:"$25 to $100"`
	Value string `json:"value" example:"25-100"`
}

// BrowseOptions is the vocabulary the filter panel renders: the category
// list (live from the catalog when available), the price presets and the
// static brand and tag lists.
//
// @Description Filter panel vocabularies
type BrowseOptions struct {
	Categories  []string           `json:"categories"`
	PriceRanges []PriceRangePreset `json:"price_ranges"`
	Brands      []string           `json:"brands"`
	Tags        []string           `json:"tags"`
}

// DefaultPriceRangePresets returns the price-range radio list. The top
// preset's max doubles as the unbounded-above sentinel.
func DefaultPriceRangePresets() []PriceRangePreset {
	return []PriceRangePreset{
		{Label: "All Price", Value: "all"},
		{Label: "Under $20", Value: "0-20"},
		{Label: "$25 to $100", Value: "25-100"},
		{Label: "$100 to $300", Value: "100-300"},
		{Label: "$300 to $500", Value: "300-500"},
		{Label: "$500 to $1,000", Value: "500-1000"},
		{Label: "$1000 to $10,000", Value: "1000-10000"},
	}
}

// DefaultBrands returns the static brand vocabulary.
func DefaultBrands() []string {
	return []string{
		"Apple", "Google", "Microsoft", "Samsung", "Dell", "HP",
		"Symphony", "Xiaomi", "Sony", "PanaSonic", "LG", "Intel", "OnePlus",
	}
}

// DefaultTags returns the popular-tag vocabulary.
func DefaultTags() []string {
	return []string{
		"Game", "iPhone", "TV", "Asus Laptops", "Macbook", "SSD",
		"Graphics Card", "Power Bank", "Smart TV", "Speaker", "Tablet",
		"Microwave", "Samsung",
	}
}

// DefaultCategories returns the fallback category vocabulary, used when
// the catalog source is unreachable and no category snapshot exists.
func DefaultCategories() []string {
	return []string{"electronics", "jewelery", "men's clothing", "women's clothing"}
}
