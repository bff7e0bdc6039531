package domain

import "fmt"

// Shape identifies the substrate outline.
type Shape int

const (
	// Wafer is a circular substrate described by its diameter.
	Wafer Shape = iota
	// Panel is a rectangular substrate described by width and height.
	Panel
)

func (s Shape) String() string {
	switch s {
	case Wafer:
		return "Wafer"
	case Panel:
		return "Panel"
	default:
		return "Unknown"
	}
}

// ParseShape converts a shape name to a Shape. Matching is exact.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "Wafer":
		return Wafer, nil
	case "Panel":
		return Panel, nil
	default:
		return 0, fmt.Errorf("%w: unknown substrate shape %q", ErrInvalidConfiguration, name)
	}
}

// Substrate describes the wafer or panel being tiled. Dimensions are in
// whatever length unit the caller uses consistently across the whole
// configuration; the engine never converts units.
type Substrate struct {
	Shape Shape

	// Diameter is used when Shape is Wafer.
	Diameter float64

	// Width and Height are used when Shape is Panel.
	Width  float64
	Height float64

	// EdgeMargin is the exclusion band measured inward from the outer
	// boundary. Dice touching the band classify as Partial or Lost.
	EdgeMargin float64
}

// EffectiveRadius returns the wafer radius after subtracting the edge
// margin. Only meaningful when Shape is Wafer.
func (s Substrate) EffectiveRadius() float64 {
	return s.Diameter/2 - s.EdgeMargin
}

// Bounds returns the substrate's axis-aligned bounding box. For a wafer
// the box is diameter x diameter centered on the origin; for a panel the
// lower-left corner is the origin.
func (s Substrate) Bounds() Rect {
	if s.Shape == Wafer {
		r := s.Diameter / 2
		return Rect{X: -r, Y: -r, Width: s.Diameter, Height: s.Diameter}
	}
	return Rect{X: 0, Y: 0, Width: s.Width, Height: s.Height}
}

// Validate checks dimensions and the margin against the substrate extent.
func (s Substrate) Validate() error {
	if s.EdgeMargin < 0 {
		return fmt.Errorf("%w: edge margin must not be negative", ErrInvalidConfiguration)
	}
	switch s.Shape {
	case Wafer:
		if s.Diameter <= 0 {
			return fmt.Errorf("%w: wafer diameter must be positive", ErrInvalidConfiguration)
		}
		if s.EffectiveRadius() <= 0 {
			return fmt.Errorf("%w: edge margin %g leaves no usable area on a %g wafer",
				ErrDegenerateGeometry, s.EdgeMargin, s.Diameter)
		}
	case Panel:
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%w: panel dimensions must be positive", ErrInvalidConfiguration)
		}
		if s.Width-2*s.EdgeMargin <= 0 || s.Height-2*s.EdgeMargin <= 0 {
			return fmt.Errorf("%w: edge margin %g leaves no usable area on a %gx%g panel",
				ErrDegenerateGeometry, s.EdgeMargin, s.Width, s.Height)
		}
	default:
		return fmt.Errorf("%w: unknown substrate shape", ErrInvalidConfiguration)
	}
	return nil
}

// Reticle is the rectangular exposure field repeated across the substrate's
// bounding box in a packed axis-aligned grid.
type Reticle struct {
	Width  float64
	Height float64
}

// Validate checks the shot dimensions.
func (r Reticle) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: reticle shot dimensions must be positive", ErrInvalidConfiguration)
	}
	return nil
}

// Die describes a single die and the scribe-line spacing between adjacent
// dice within one reticle shot. The scribe gap is only between dice, never
// trailing after the last column or row.
type Die struct {
	Width   float64
	Height  float64
	ScribeX float64
	ScribeY float64
}

// Validate checks the die dimensions and, against the given reticle, that
// at least one die fits per shot.
func (d Die) Validate(r Reticle) error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: die dimensions must be positive", ErrInvalidConfiguration)
	}
	if d.ScribeX < 0 || d.ScribeY < 0 {
		return fmt.Errorf("%w: scribe line widths must not be negative", ErrInvalidConfiguration)
	}
	if d.Width > r.Width || d.Height > r.Height {
		return fmt.Errorf("%w: die %gx%g does not fit in reticle shot %gx%g",
			ErrInvalidConfiguration, d.Width, d.Height, r.Width, r.Height)
	}
	return nil
}
