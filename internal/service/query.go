// Package service contains the business logic for the storefront service.
package service

import (
	"sort"
	"strings"

	"github.com/guttosm/storefront-service/internal/domain/model"
)

// Query is the catalog query engine: a pure function from the raw product
// collection, the active filter state, the free-text search and the sort
// key to an ordered result list.
//
// Stages run in a fixed order: search, category, price, tag, then sort.
// Every stage before the sort is a set-narrowing predicate, so only the
// sort's position is semantically load-bearing. The input slice is never
// mutated; ties keep the original fetch order (stable sort).
func Query(products []model.Product, filters model.FilterState, searchText string, sortKey model.SortKey) []model.Product {
	filtered := make([]model.Product, 0, len(products))

	search := strings.ToLower(strings.TrimSpace(searchText))
	category, hasCategory := filters.Categories.Value()
	categoryLower := strings.ToLower(category)
	tag, hasTag := filters.Tags.Value()
	tagLower := strings.ToLower(tag)

	priceTokens := make([]model.PriceRangeToken, 0, len(filters.PriceRange))
	for _, raw := range filters.PriceRange {
		if token, ok := model.ParsePriceRangeToken(raw); ok {
			priceTokens = append(priceTokens, token)
		}
	}

	for _, p := range products {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if hasCategory && !matchesCategory(p, category, categoryLower) {
			continue
		}
		if len(priceTokens) > 0 && !matchesAnyPriceRange(p, priceTokens) {
			continue
		}
		if hasTag && !matchesTag(p, tagLower) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, sortKey)
	return filtered
}

// matchesSearch keeps products whose title, description or category
// contains the search text as a case-insensitive substring.
func matchesSearch(p model.Product, search string) bool {
	return strings.Contains(strings.ToLower(p.Title), search) ||
		strings.Contains(strings.ToLower(p.Description), search) ||
		strings.Contains(strings.ToLower(p.Category), search)
}

// matchesCategory keeps products whose category exactly matches the
// selection or contains it as a case-insensitive substring. The substring
// arm tolerates vocabulary mismatches between filter labels and catalog
// category strings.
func matchesCategory(p model.Product, category, categoryLower string) bool {
	return p.Category == category ||
		strings.Contains(strings.ToLower(p.Category), categoryLower)
}

// matchesAnyPriceRange keeps products falling inside at least one token.
func matchesAnyPriceRange(p model.Product, tokens []model.PriceRangeToken) bool {
	for _, t := range tokens {
		if t.Contains(p.Price) {
			return true
		}
	}
	return false
}

// matchesTag keeps products whose title or category contains the tag as
// a case-insensitive substring.
func matchesTag(p model.Product, tagLower string) bool {
	return strings.Contains(strings.ToLower(p.Title), tagLower) ||
		strings.Contains(strings.ToLower(p.Category), tagLower)
}

// sortProducts applies the comparator selected by sortKey in place.
// Unrecognized keys fall back to popularity (descending review count).
func sortProducts(products []model.Product, sortKey model.SortKey) {
	switch sortKey {
	case model.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case model.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case model.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating.Rate > products[j].Rating.Rate
		})
	case model.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating.Count > products[j].Rating.Count
		})
	}
}
