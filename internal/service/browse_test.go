package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/storefront-service/internal/domain/model"
)

func TestBrowseSession_InitialView(t *testing.T) {
	s := NewBrowseSession(4)
	defer s.Close()

	view := s.View(catalogFixture())

	assert.Equal(t, 1, view.Page.CurrentPage)
	assert.Equal(t, 2, view.Page.TotalPages)
	assert.Equal(t, 8, view.Page.TotalResults)
	assert.Len(t, view.Page.Items, 4)
	assert.Equal(t, model.EmptyFilterState(), view.Filters)
	assert.Empty(t, view.Search)
	assert.Equal(t, model.SortPopular, view.Sort)
}

func TestBrowseSession_SetSearch(t *testing.T) {
	s := NewBrowseSession(4)
	defer s.Close()

	s.SetSearch("gold")
	view := s.View(catalogFixture())

	assert.Equal(t, "gold", view.Search)
	assert.Equal(t, 2, view.Page.TotalResults)
	assert.Equal(t, []int{3, 4}, ids(view.Page.Items))
}

func TestBrowseSession_SetSort(t *testing.T) {
	s := NewBrowseSession(16)
	defer s.Close()

	s.SetSort(model.SortPriceHigh)
	view := s.View(catalogFixture())

	assert.Equal(t, model.SortPriceHigh, view.Sort)
	assert.Equal(t, []int{3, 6, 4, 1, 5, 7, 2, 8}, ids(view.Page.Items))
}

func TestBrowseSession_SetPage(t *testing.T) {
	catalog := catalogFixture()

	tests := []struct {
		name     string
		page     int
		wantErr  error
		wantPage int
	}{
		{name: "valid second page", page: 2, wantPage: 2},
		{name: "zero is out of range", page: 0, wantErr: ErrPageOutOfRange, wantPage: 1},
		{name: "beyond last page", page: 3, wantErr: ErrPageOutOfRange, wantPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewBrowseSession(4)
			defer s.Close()

			err := s.SetPage(tt.page, catalog)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			view := s.View(catalog)
			assert.Equal(t, tt.wantPage, view.Page.CurrentPage)
		})
	}
}

func TestBrowseSession_PageValidityFollowsFilteredResults(t *testing.T) {
	s := NewBrowseSession(4)
	defer s.Close()
	catalog := catalogFixture()

	// Page 2 exists over the full catalog but not after narrowing to two
	// results.
	require.NoError(t, s.ToggleFilter(model.DimensionCategory, "jewelery"))

	err := s.SetPage(2, catalog)

	assert.ErrorIs(t, err, ErrPageOutOfRange)
}

func TestBrowseSession_MutationsResetPage(t *testing.T) {
	catalog := catalogFixture()

	tests := []struct {
		name   string
		mutate func(s *BrowseSession)
	}{
		{name: "search change", mutate: func(s *BrowseSession) { s.SetSearch("shirt") }},
		{name: "sort change", mutate: func(s *BrowseSession) { s.SetSort(model.SortNewest) }},
		{name: "filter toggle", mutate: func(s *BrowseSession) {
			require.NoError(t, s.ToggleFilter(model.DimensionCategory, "electronics"))
		}},
		{name: "brand toggle", mutate: func(s *BrowseSession) { s.ToggleBrand("acme", true) }},
		{name: "chip removal", mutate: func(s *BrowseSession) {
			require.NoError(t, s.RemoveChip(model.DimensionCategory, "absent"))
		}},
		{name: "clear filters", mutate: func(s *BrowseSession) { s.ClearFilters() }},
		{name: "slider move", mutate: func(s *BrowseSession) { s.MoveSlider(0, 10000) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewBrowseSession(4)
			defer s.Close()
			require.NoError(t, s.SetPage(2, catalog))

			tt.mutate(s)

			view := s.View(catalog)
			assert.Equal(t, 1, view.Page.CurrentPage, "every query mutation must return to page 1")
		})
	}
}

func TestBrowseSession_ToggleFilter(t *testing.T) {
	s := NewBrowseSession(16)
	defer s.Close()
	catalog := catalogFixture()

	require.NoError(t, s.ToggleFilter(model.DimensionCategory, "jewelery"))
	view := s.View(catalog)
	assert.Equal(t, model.SingleChoice{"jewelery"}, view.Filters.Categories)
	assert.Equal(t, []int{3, 4}, ids(view.Page.Items))

	// Toggling the same value off restores the full catalog.
	require.NoError(t, s.ToggleFilter(model.DimensionCategory, "jewelery"))
	view = s.View(catalog)
	assert.Empty(t, view.Filters.Categories)
	assert.Equal(t, 8, view.Page.TotalResults)
}

func TestBrowseSession_ToggleFilterInvalidDimension(t *testing.T) {
	s := NewBrowseSession(16)
	defer s.Close()

	err := s.ToggleFilter(model.Dimension("colors"), "red")

	assert.ErrorIs(t, err, model.ErrInvalidDimension)
}

func TestBrowseSession_ClearFilters(t *testing.T) {
	s := NewBrowseSession(16)
	defer s.Close()
	catalog := catalogFixture()

	require.NoError(t, s.ToggleFilter(model.DimensionCategory, "electronics"))
	s.ToggleBrand("acme", true)
	s.SetSearch("monitor")
	s.SetSort(model.SortPriceLow)

	s.ClearFilters()

	view := s.View(catalog)
	assert.Equal(t, model.EmptyFilterState(), view.Filters)
	assert.Equal(t, "monitor", view.Search, "clearing filters keeps the search text")
	assert.Equal(t, model.SortPriceLow, view.Sort, "clearing filters keeps the sort key")
}

func TestBrowseSession_MoveSlider(t *testing.T) {
	s := NewBrowseSession(16)
	defer s.Close()
	catalog := catalogFixture()

	s.MoveSlider(100, 200)

	view := s.View(catalog)
	assert.Equal(t, model.SingleChoice{"100-200"}, view.Filters.PriceRange)
	assert.Equal(t, []int{5, 1, 4}, ids(view.Page.Items))
}

func TestBrowseSession_MoveSliderReplacesPreset(t *testing.T) {
	s := NewBrowseSession(16)
	defer s.Close()

	require.NoError(t, s.ToggleFilter(model.DimensionPriceRange, "25-100"))
	s.MoveSlider(500, 10000)

	view := s.View(catalogFixture())
	assert.Equal(t, model.SingleChoice{"500-10000"}, view.Filters.PriceRange)
}

func TestBrowseSession_MoveSliderInvertedPairClamps(t *testing.T) {
	s := NewBrowseSession(16)
	defer s.Close()

	s.MoveSlider(600, 200)

	view := s.View(catalogFixture())
	assert.Equal(t, model.SingleChoice{"600-600"}, view.Filters.PriceRange)
}

func TestBrowseSession_ViewIsConsistentAcrossCalls(t *testing.T) {
	s := NewBrowseSession(4)
	defer s.Close()
	catalog := catalogFixture()

	s.SetSearch("clothing")
	first := s.View(catalog)
	second := s.View(catalog)

	assert.Equal(t, first, second)
}
