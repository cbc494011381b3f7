package layout

import (
	"errors"
	"math"
)

var (
	// ErrInsufficientSpace means a fixed size or minimum could not fit
	ErrInsufficientSpace = errors.New("layout: insufficient space")
	// ErrInvalidPercentages means a percentage was outside 0-100 or the sum passed 100
	ErrInvalidPercentages = errors.New("layout: invalid percentages")
)

type constraintKind uint8

const (
	kindFixed constraintKind = iota
	kindPercentage
	kindRange
	kindMin
	kindMax
	kindFlexible
)

// Constraint describes how much space an element takes within a layout
// dimension. Build values with Fixed, Percentage, Range, Min, Max and
// Flexible.
type Constraint struct {
	kind constraintKind
	pct  float64
	min  int
	max  int
}

// Fixed takes exactly n units
func Fixed(n int) Constraint {
	return Constraint{kind: kindFixed, min: n}
}

// Percentage takes pct percent of the available space, shrinking
// proportionally when fixed sizes crowd it out
func Percentage(pct float64) Constraint {
	return Constraint{kind: kindPercentage, pct: pct}
}

// Range takes between min and max units
func Range(min, max int) Constraint {
	return Constraint{kind: kindRange, min: min, max: max}
}

// Min takes at least n units and grows with leftover space
func Min(n int) Constraint {
	return Constraint{kind: kindMin, min: n}
}

// Max takes at most n units
func Max(n int) Constraint {
	return Constraint{kind: kindMax, max: n}
}

// Flexible shares the leftover space evenly with the other flexibles
func Flexible() Constraint {
	return Constraint{kind: kindFlexible}
}

// expandCap returns the growth ceiling for constraints that may absorb
// leftover space, and whether the constraint expands at all
func (c Constraint) expandCap() (int, bool) {
	switch c.kind {
	case kindRange:
		return c.max, true
	case kindMax:
		return c.max, true
	case kindMin, kindFlexible:
		return math.MaxInt, true
	default:
		return 0, false
	}
}

// Resolve splits the available space of one dimension across the
// constraints and returns the allocated sizes in order.
//
// Fixed sizes allocate first, then percentages (shrunk proportionally if
// they no longer fit beside the fixed sizes), then minimums are enforced,
// and whatever remains is distributed in rounds over the expandable
// constraints until everything is capped or the space is gone.
func Resolve(constraints []Constraint, available int) ([]int, error) {
	if len(constraints) == 0 {
		return nil, nil
	}

	totalPct := 0.0
	for _, c := range constraints {
		if c.kind == kindPercentage {
			if c.pct < 0 || c.pct > 100 {
				return nil, ErrInvalidPercentages
			}
			totalPct += c.pct
		}
	}
	if totalPct > 100 {
		return nil, ErrInvalidPercentages
	}

	sizes := make([]int, len(constraints))

	fixedTotal := 0
	for i, c := range constraints {
		if c.kind == kindFixed {
			sizes[i] = c.min
			fixedTotal += c.min
		}
	}
	if fixedTotal > available {
		return nil, ErrInsufficientSpace
	}

	pctTotal := 0
	for i, c := range constraints {
		if c.kind == kindPercentage {
			ideal := int(math.Round(float64(available) * c.pct / 100))
			sizes[i] = ideal
			pctTotal += ideal
		}
	}

	// Fixed and percentage together overflow: shrink percentages proportionally
	if fixedTotal+pctTotal > available && pctTotal > 0 {
		shrink := float64(available-fixedTotal) / float64(pctTotal)
		for i, c := range constraints {
			if c.kind == kindPercentage {
				sizes[i] = int(math.Round(float64(sizes[i]) * shrink))
			}
		}
	}

	for i, c := range constraints {
		if c.kind == kindRange || c.kind == kindMin {
			sizes[i] = max(sizes[i], c.min)
		}
	}

	used := 0
	for _, s := range sizes {
		used += s
	}
	if used > available {
		return nil, ErrInsufficientSpace
	}
	remaining := available - used

	type expandable struct {
		idx int
		cap int
	}
	var expandables []expandable
	for i, c := range constraints {
		if cap, ok := c.expandCap(); ok {
			expandables = append(expandables, expandable{idx: i, cap: cap})
		}
	}

	for remaining > 0 && len(expandables) > 0 {
		var eligible []expandable
		for _, e := range expandables {
			if sizes[e.idx] < e.cap {
				eligible = append(eligible, e)
			}
		}
		if len(eligible) == 0 {
			break
		}

		perItem := max(1, remaining/len(eligible))
		distributed := 0
		for _, e := range eligible {
			if remaining == 0 {
				break
			}
			add := min(e.cap-sizes[e.idx], min(perItem, remaining))
			sizes[e.idx] += add
			distributed += add
			remaining -= add
		}
		if distributed == 0 {
			break
		}
	}

	return sizes, nil
}
