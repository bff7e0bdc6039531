// Package geometry implements the spatial half of the yield pipeline:
// substrate boundary predicates, reticle-shot tiling, die placement within
// a shot, and the four-corner boundary classification.
package geometry

import "github.com/fabtooling/dieyield/internal/domain"

// Boundary reports whether a point lies inside the effective substrate
// area, the outline shrunk inward by the edge margin.
type Boundary interface {
	Inside(x, y float64) bool
}

// NewBoundary builds the boundary predicate for a substrate. The predicate
// alone encodes degenerate geometry: when the margin consumes the whole
// substrate every point is outside, with no special-casing by callers.
func NewBoundary(s domain.Substrate) Boundary {
	if s.Shape == domain.Wafer {
		return waferBoundary{effectiveRadius: s.EffectiveRadius()}
	}
	return panelBoundary{
		width:  s.Width,
		height: s.Height,
		margin: s.EdgeMargin,
	}
}

// waferBoundary is a circle of effectiveRadius centered on the origin.
// Coordinates are relative to the wafer center.
type waferBoundary struct {
	effectiveRadius float64
}

func (b waferBoundary) Inside(x, y float64) bool {
	if b.effectiveRadius <= 0 {
		return false
	}
	return x*x+y*y <= b.effectiveRadius*b.effectiveRadius
}

// panelBoundary is the panel rectangle shrunk by margin on every side.
// Coordinates are relative to the panel's lower-left corner.
type panelBoundary struct {
	width  float64
	height float64
	margin float64
}

func (b panelBoundary) Inside(x, y float64) bool {
	if b.width-2*b.margin <= 0 || b.height-2*b.margin <= 0 {
		return false
	}
	return x >= b.margin && x <= b.width-b.margin &&
		y >= b.margin && y <= b.height-b.margin
}
