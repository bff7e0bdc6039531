package domain

import "fmt"

// ModelKind selects one of the closed-form yield models.
type ModelKind int

const (
	Poisson ModelKind = iota
	Murphy
	Rectangular
	Moore
	Seeds
)

func (m ModelKind) String() string {
	switch m {
	case Poisson:
		return "Poisson"
	case Murphy:
		return "Murphy"
	case Rectangular:
		return "Rectangular"
	case Moore:
		return "Moore"
	case Seeds:
		return "Seeds"
	default:
		return "Unknown"
	}
}

// ModelKinds lists every supported model, in display order.
func ModelKinds() []ModelKind {
	return []ModelKind{Poisson, Murphy, Rectangular, Moore, Seeds}
}

// ParseModelKind converts a model name to a ModelKind. Matching is exact.
func ParseModelKind(name string) (ModelKind, error) {
	for _, m := range ModelKinds() {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown yield model %q", ErrInvalidConfiguration, name)
}

// YieldParams feed the yield-fraction computation. DefectRate is defects
// per unit area and CriticalArea the defect-sensitive area per die, in
// consistent units so their product is dimensionless.
type YieldParams struct {
	DefectRate   float64
	CriticalArea float64
	Model        ModelKind
}

// Validate checks the rates for negative values.
func (p YieldParams) Validate() error {
	if p.DefectRate < 0 {
		return fmt.Errorf("%w: defect rate must not be negative", ErrInvalidConfiguration)
	}
	if p.CriticalArea < 0 {
		return fmt.Errorf("%w: critical area must not be negative", ErrInvalidConfiguration)
	}
	if _, err := ParseModelKind(p.Model.String()); err != nil {
		return err
	}
	return nil
}

// Result tallies one calculation run.
type Result struct {
	Total     int `json:"total"`
	Good      int `json:"good"`
	Defective int `json:"defective"`
	Partial   int `json:"partial"`
	Lost      int `json:"lost"`

	// FabYield is Good divided by the physical die count, or 0 when no
	// physical dice exist. It is always a defined number, never NaN.
	FabYield float64 `json:"fab_yield"`
}

// Physical returns the count of physically placeable dice: everything
// except Lost.
func (r Result) Physical() int {
	return r.Good + r.Defective + r.Partial
}
