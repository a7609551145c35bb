package service

import "github.com/guttosm/storefront-service/internal/domain/model"

// ToggleSingleChoice applies toggle semantics to a single-choice dimension:
// re-selecting the active value clears the dimension, any other value
// replaces it. Returns a new FilterState; the input is never mutated.
func ToggleSingleChoice(f model.FilterState, dimension model.Dimension, value string) (model.FilterState, error) {
	switch dimension {
	case model.DimensionCategory:
		f.Categories = f.Categories.Toggle(value)
	case model.DimensionPriceRange:
		f.PriceRange = f.PriceRange.Toggle(value)
	case model.DimensionTag:
		f.Tags = f.Tags.Toggle(value)
	default:
		return f, model.ErrInvalidDimension
	}
	return f, nil
}

// ToggleBrand includes or excludes one brand independently of the others.
func ToggleBrand(f model.FilterState, brand string, included bool) model.FilterState {
	f.Brands = f.Brands.Set(brand, included)
	return f
}

// RemoveChip removes exactly one value from one dimension's selection,
// the command behind dismissing an active-filter chip. Absent values are
// a no-op, never an error.
func RemoveChip(f model.FilterState, dimension model.Dimension, value string) (model.FilterState, error) {
	switch dimension {
	case model.DimensionCategory:
		f.Categories = f.Categories.Remove(value)
	case model.DimensionPriceRange:
		f.PriceRange = f.PriceRange.Remove(value)
	case model.DimensionBrand:
		f.Brands = f.Brands.Remove(value)
	case model.DimensionTag:
		f.Tags = f.Tags.Remove(value)
	default:
		return f, model.ErrInvalidDimension
	}
	return f, nil
}

// PriceSlider tracks the live [min, max] pair of the two-handle price
// range control. It is a secondary input surface onto the price-range
// dimension: only after the first user-initiated change does a commit
// replace the price-range selection.
type PriceSlider struct {
	min        int
	max        int
	bound      int
	interacted bool
}

// NewPriceSlider creates a slider spanning [0, bound] with both handles
// at the extremes and no interaction recorded yet.
func NewPriceSlider(bound int) *PriceSlider {
	if bound <= 0 {
		bound = model.PriceRangeUnboundedMax
	}
	return &PriceSlider{min: 0, max: bound, bound: bound}
}

// Values returns the current [min, max] handle positions.
func (s *PriceSlider) Values() (min, max int) {
	return s.min, s.max
}

// Interacted reports whether the user has moved the slider at least once.
func (s *PriceSlider) Interacted() bool {
	return s.interacted
}

// Move sets both handles, clamping each to [0, bound]. If the pair would
// invert, the other handle is clamped to the moved value rather than the
// drag being rejected: min wins when min > max on a min move, and
// symmetric for max. The first Move marks the slider as interacted.
func (s *PriceSlider) Move(min, max int) {
	s.interacted = true
	s.min = clampInt(min, 0, s.bound)
	s.max = clampInt(max, 0, s.bound)
	if s.min > s.max {
		s.max = s.min
	}
}

// MoveMin drags the lower handle only. An inverting drag pushes the upper
// handle along with it.
func (s *PriceSlider) MoveMin(min int) {
	s.interacted = true
	s.min = clampInt(min, 0, s.bound)
	if s.min > s.max {
		s.max = s.min
	}
}

// MoveMax drags the upper handle only. An inverting drag pushes the lower
// handle along with it.
func (s *PriceSlider) MoveMax(max int) {
	s.interacted = true
	s.max = clampInt(max, 0, s.bound)
	if s.max < s.min {
		s.min = s.max
	}
}

// Commit writes the slider position into the filter state as the sole
// price-range token, replacing any prior preset selection. Before the
// first interaction Commit is a no-op, so mounting the control never
// clobbers a preset.
func (s *PriceSlider) Commit(f model.FilterState) model.FilterState {
	if !s.interacted {
		return f
	}
	f.PriceRange = model.SingleChoice{model.FormatPriceRangeToken(s.min, s.max)}
	return f
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
