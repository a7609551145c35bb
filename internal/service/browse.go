package service

import (
	"errors"

	"github.com/guttosm/storefront-service/internal/domain/model"
)

// ErrPageOutOfRange is returned when a page request falls outside
// [1, totalPages]. The current page is left unchanged.
var ErrPageOutOfRange = errors.New("page out of range")

// BrowseView is the full render of one browse session: the current page
// plus the inputs that produced it, so a client can draw the filter panel,
// the active-filter chips and the pager from one response.
//
// @Description Rendered browse state
type BrowseView struct {
	Page    model.PageView    `json:"page"`
	Filters model.FilterState `json:"filters"`
	Search  string            `json:"search" example:"laptop"`
	Sort    model.SortKey     `json:"sort" example:"popular"`
}

// browseState is the mutable state owned by the session's command loop.
type browseState struct {
	filters   model.FilterState
	search    string
	sortKey   model.SortKey
	paginator *Paginator
	slider    *PriceSlider
}

type browseCommand struct {
	apply func(*browseState) error
	reply chan error
}

// BrowseSession owns the filter state, search text, sort key and page
// position for one client. Like the cart store it serializes all
// mutations through a single command loop, so no two commands interleave
// their read-modify-write. The query engine itself stays pure: every
// render consumes an explicit product snapshot.
type BrowseSession struct {
	commands chan browseCommand
	done     chan struct{}
}

// NewBrowseSession creates a session on page 1 with no active filters.
func NewBrowseSession(pageSize int) *BrowseSession {
	s := &BrowseSession{
		commands: make(chan browseCommand),
		done:     make(chan struct{}),
	}
	go s.run(pageSize)
	return s
}

func (s *BrowseSession) run(pageSize int) {
	state := browseState{
		filters:   model.EmptyFilterState(),
		sortKey:   model.SortPopular,
		paginator: NewPaginator(pageSize),
		slider:    NewPriceSlider(model.PriceRangeUnboundedMax),
	}
	for {
		select {
		case cmd := <-s.commands:
			cmd.reply <- cmd.apply(&state)
		case <-s.done:
			return
		}
	}
}

func (s *BrowseSession) dispatch(apply func(*browseState) error) error {
	cmd := browseCommand{apply: apply, reply: make(chan error, 1)}
	s.commands <- cmd
	return <-cmd.reply
}

// SetSearch replaces the free-text search and resets to page 1.
func (s *BrowseSession) SetSearch(text string) {
	_ = s.dispatch(func(state *browseState) error {
		state.search = text
		state.paginator.Reset()
		return nil
	})
}

// SetSort replaces the sort key and resets to page 1.
func (s *BrowseSession) SetSort(key model.SortKey) {
	_ = s.dispatch(func(state *browseState) error {
		state.sortKey = key
		state.paginator.Reset()
		return nil
	})
}

// SetPage moves to page n of the result set computed from products.
// Out-of-range requests return ErrPageOutOfRange and leave the page
// unchanged.
func (s *BrowseSession) SetPage(n int, products []model.Product) error {
	return s.dispatch(func(state *browseState) error {
		results := Query(products, state.filters, state.search, state.sortKey)
		if !state.paginator.SetPage(n, len(results)) {
			return ErrPageOutOfRange
		}
		return nil
	})
}

// ToggleFilter applies single-choice toggle semantics to the category,
// price-range or tag dimension and resets to page 1.
func (s *BrowseSession) ToggleFilter(dimension model.Dimension, value string) error {
	return s.dispatch(func(state *browseState) error {
		next, err := ToggleSingleChoice(state.filters, dimension, value)
		if err != nil {
			return err
		}
		state.filters = next
		state.paginator.Reset()
		return nil
	})
}

// ToggleBrand includes or excludes one brand and resets to page 1.
func (s *BrowseSession) ToggleBrand(brand string, included bool) {
	_ = s.dispatch(func(state *browseState) error {
		state.filters = ToggleBrand(state.filters, brand, included)
		state.paginator.Reset()
		return nil
	})
}

// RemoveChip dismisses one active-filter value and resets to page 1.
func (s *BrowseSession) RemoveChip(dimension model.Dimension, value string) error {
	return s.dispatch(func(state *browseState) error {
		next, err := RemoveChip(state.filters, dimension, value)
		if err != nil {
			return err
		}
		state.filters = next
		state.paginator.Reset()
		return nil
	})
}

// ClearFilters drops every active filter selection and resets to page 1.
// The search text, sort key and slider interaction state are kept.
func (s *BrowseSession) ClearFilters() {
	_ = s.dispatch(func(state *browseState) error {
		state.filters = model.EmptyFilterState()
		state.paginator.Reset()
		return nil
	})
}

// MoveSlider drags the price slider to [min, max] and commits the position
// as the sole price-range selection, then resets to page 1. An inverting
// pair is clamped, never rejected.
func (s *BrowseSession) MoveSlider(min, max int) {
	_ = s.dispatch(func(state *browseState) error {
		state.slider.Move(min, max)
		state.filters = state.slider.Commit(state.filters)
		state.paginator.Reset()
		return nil
	})
}

// View renders the session against a product snapshot: query engine over
// the snapshot, then the current page slice.
func (s *BrowseSession) View(products []model.Product) BrowseView {
	var view BrowseView
	_ = s.dispatch(func(state *browseState) error {
		results := Query(products, state.filters, state.search, state.sortKey)
		view = BrowseView{
			Page:    state.paginator.Slice(results),
			Filters: state.filters,
			Search:  state.search,
			Sort:    state.sortKey,
		}
		return nil
	})
	return view
}

// Close stops the command loop. The session must not be used afterwards.
func (s *BrowseSession) Close() {
	close(s.done)
}
