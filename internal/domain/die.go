package domain

// Rect is an axis-aligned rectangle anchored at its lower-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Corners returns the four corner points in lower-left, lower-right,
// upper-left, upper-right order.
func (r Rect) Corners() [4][2]float64 {
	return [4][2]float64{
		{r.X, r.Y},
		{r.X + r.Width, r.Y},
		{r.X, r.Y + r.Height},
		{r.X + r.Width, r.Y + r.Height},
	}
}

// DieStatus is the classification of one placed die.
type DieStatus int

const (
	// StatusInside marks a die whose four corners all lie inside the
	// effective substrate area. It is a pre-simulation state; defect
	// injection resolves every Inside die to Good or Defective.
	StatusInside DieStatus = iota
	// StatusGood is an Inside die that survived defect injection.
	StatusGood
	// StatusDefective is an Inside die that drew a defect.
	StatusDefective
	// StatusPartial is a die with one to three corners inside.
	StatusPartial
	// StatusLost is a die with no corners inside.
	StatusLost
)

func (s DieStatus) String() string {
	switch s {
	case StatusInside:
		return "inside"
	case StatusGood:
		return "good"
	case StatusDefective:
		return "defective"
	case StatusPartial:
		return "partial"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so statuses serialize as
// their names in JSON output.
func (s DieStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// DieInstance is one die placed at absolute substrate coordinates.
// Instances are created once per tiling pass and are immutable after
// classification, except for the single Inside -> Good|Defective
// transition performed during defect injection.
type DieInstance struct {
	Rect
	Status DieStatus `json:"status"`
}
