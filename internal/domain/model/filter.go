package model

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidDimension is returned when a filter command names an unknown
// filter dimension.
var ErrInvalidDimension = errors.New("invalid filter dimension")

// Dimension identifies one independent facet of product selection.
type Dimension string

const (
	// DimensionCategory is the single-choice category facet.
	DimensionCategory Dimension = "categories"
	// DimensionPriceRange is the single-choice price range facet.
	DimensionPriceRange Dimension = "priceRange"
	// DimensionBrand is the multi-choice brand facet.
	DimensionBrand Dimension = "brands"
	// DimensionTag is the single-choice tag facet.
	DimensionTag Dimension = "tags"
)

// ParseDimension validates a wire-level dimension name.
func ParseDimension(s string) (Dimension, error) {
	switch d := Dimension(s); d {
	case DimensionCategory, DimensionPriceRange, DimensionBrand, DimensionTag:
		return d, nil
	default:
		return "", ErrInvalidDimension
	}
}

// SingleChoice is a selection holding at most one value. Selecting the
// active value again clears it; selecting a different value replaces it.
// Represented as a slice for uniform serialization with MultiChoice.
type SingleChoice []string

// Toggle returns the selection after toggling value: re-selecting the
// active value clears the choice, any other value replaces it.
func (c SingleChoice) Toggle(value string) SingleChoice {
	if len(c) == 1 && c[0] == value {
		return SingleChoice{}
	}
	return SingleChoice{value}
}

// Remove returns the selection without value (no-op when absent).
func (c SingleChoice) Remove(value string) SingleChoice {
	if len(c) == 1 && c[0] == value {
		return SingleChoice{}
	}
	return c
}

// Value returns the selected value and whether one is set.
func (c SingleChoice) Value() (string, bool) {
	if len(c) == 1 {
		return c[0], true
	}
	return "", false
}

// MultiChoice is an independent multi-select: each value toggles on and
// off without affecting the others.
type MultiChoice []string

// Set returns the selection with value included or excluded. Including an
// already-present value or excluding an absent one is a no-op.
func (c MultiChoice) Set(value string, included bool) MultiChoice {
	if included {
		for _, v := range c {
			if v == value {
				return c
			}
		}
		out := make(MultiChoice, len(c), len(c)+1)
		copy(out, c)
		return append(out, value)
	}
	return c.Remove(value)
}

// Remove returns the selection without value (no-op when absent).
func (c MultiChoice) Remove(value string) MultiChoice {
	out := make(MultiChoice, 0, len(c))
	for _, v := range c {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

// FilterState holds the active selection for every filter dimension.
// It is a value type: every mutation produces a new state.
//
// @Description Active filter selections
type FilterState struct {
	// Categories holds at most one selected category
	Categories SingleChoice `json:"categories"`
	// PriceRange holds at most one range-token ("all" or "<min>-<max>")
	PriceRange SingleChoice `json:"priceRange"`
	// Brands holds the independently selected brands
	Brands MultiChoice `json:"brands"`
	// Tags holds at most one selected tag
	Tags SingleChoice `json:"tags"`
}

// EmptyFilterState returns a state with no active selections.
func EmptyFilterState() FilterState {
	return FilterState{
		Categories: SingleChoice{},
		PriceRange: SingleChoice{},
		Brands:     MultiChoice{},
		Tags:       SingleChoice{},
	}
}

// Active reports whether any dimension has a selection.
func (f FilterState) Active() bool {
	return len(f.Categories) > 0 || len(f.PriceRange) > 0 ||
		len(f.Brands) > 0 || len(f.Tags) > 0
}

// PriceRangeUnboundedMax is the sentinel maximum that makes a range-token
// unbounded above ("1000-10000" means $1000 and up).
const PriceRangeUnboundedMax = 10000

// PriceRangeToken is a parsed "<min>-<max>" range-token.
type PriceRangeToken struct {
	Min float64
	Max float64
}

// Contains reports whether price falls inside the token's interval.
// A max equal to PriceRangeUnboundedMax is treated as unbounded above.
func (t PriceRangeToken) Contains(price float64) bool {
	if price < t.Min {
		return false
	}
	return t.Max == PriceRangeUnboundedMax || price <= t.Max
}

// ParsePriceRangeToken parses "<min>-<max>". The literal "all" and
// malformed tokens report ok=false, meaning no price constraint: a token
// that cannot be parsed widens the result set rather than emptying it.
// Nothing in the shipped preset vocabulary or the slider produces a
// malformed token, so this is a posture for hand-crafted state only.
func ParsePriceRangeToken(s string) (PriceRangeToken, bool) {
	if s == "" || s == "all" {
		return PriceRangeToken{}, false
	}
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return PriceRangeToken{}, false
	}
	min, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return PriceRangeToken{}, false
	}
	max, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return PriceRangeToken{}, false
	}
	return PriceRangeToken{Min: min, Max: max}, true
}

// FormatPriceRangeToken renders a [min, max] pair as a range-token.
func FormatPriceRangeToken(min, max int) string {
	return strconv.Itoa(min) + "-" + strconv.Itoa(max)
}
