package service

import "github.com/guttosm/storefront-service/internal/domain/model"

// DefaultPageSize is the number of products rendered per page.
const DefaultPageSize = 16

// Paginator slices an ordered result list into fixed-size pages.
// Page requests outside [1, totalPages] are ignored; any change to the
// query inputs must call Reset so a changed query starts back at page 1.
type Paginator struct {
	pageSize    int
	currentPage int
}

// NewPaginator creates a paginator positioned on page 1.
// A non-positive pageSize falls back to DefaultPageSize.
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{pageSize: pageSize, currentPage: 1}
}

// CurrentPage returns the 1-based current page.
func (p *Paginator) CurrentPage() int {
	return p.currentPage
}

// PageSize returns the fixed page size.
func (p *Paginator) PageSize() int {
	return p.pageSize
}

// TotalPages computes the page count for a result list of the given
// length: ceil(length / pageSize), 0 when the list is empty.
func (p *Paginator) TotalPages(totalResults int) int {
	if totalResults <= 0 {
		return 0
	}
	return (totalResults + p.pageSize - 1) / p.pageSize
}

// SetPage moves to page n if 1 <= n <= TotalPages(totalResults).
// Out-of-range requests leave the current page unchanged and report false.
func (p *Paginator) SetPage(n, totalResults int) bool {
	if n < 1 || n > p.TotalPages(totalResults) {
		return false
	}
	p.currentPage = n
	return true
}

// Reset returns to page 1. Called on every filter, search or sort change.
func (p *Paginator) Reset() {
	p.currentPage = 1
}

// Slice renders the current page of the given ordered result list.
// A current page beyond the end of the list yields an empty page rather
// than clamping, matching the reset-on-change contract: the page is only
// ever out of range transiently, between input change and reset.
func (p *Paginator) Slice(results []model.Product) model.PageView {
	total := len(results)
	start := (p.currentPage - 1) * p.pageSize
	end := start + p.pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]model.Product, end-start)
	copy(items, results[start:end])

	return model.PageView{
		Items:        items,
		CurrentPage:  p.currentPage,
		TotalPages:   p.TotalPages(total),
		TotalResults: total,
	}
}
