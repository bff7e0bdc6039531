// Package cliconfig merges dieyield configuration from its three sources
// in flag > environment > file precedence, using a changed-flag map to
// keep explicit flags authoritative.
package cliconfig

import (
	"fmt"
	"strconv"

	"github.com/fabtooling/dieyield/internal/domain"
	"github.com/fabtooling/dieyield/internal/engine"
)

// Config holds the CLI-facing configuration for one calculation. All
// lengths share one unit chosen by the user (the defaults read as mm);
// the engine never converts units.
type Config struct {
	// Substrate
	Shape       string
	Diameter    float64
	PanelWidth  float64
	PanelHeight float64
	EdgeMargin  float64

	// Reticle shot
	ShotWidth  float64
	ShotHeight float64

	// Die
	DieWidth  float64
	DieHeight float64
	ScribeX   float64
	ScribeY   float64

	// Yield model
	DefectRate   float64
	CriticalArea float64
	Model        string

	// Simulation
	Seed    int64
	Runs    int
	Workers int

	// Outputs (empty means skip)
	MapPath   string
	ChartPath string
	JSONPath  string
	CSVPath   string

	// ShowShots overlays reticle-shot outlines on the die map.
	ShowShots bool

	// Watch re-runs the calculation whenever the config file changes.
	Watch bool
}

// DefaultConfig returns a Config with the defaults the interactive form
// ships with: a 300 wafer, 26x33 shots, 5x5 dice with 0.2 scribe, and a
// Poisson model at 0.5 defects per unit area over 25 critical area.
func DefaultConfig() Config {
	return Config{
		Shape:        "Wafer",
		Diameter:     300,
		PanelWidth:   1000,
		PanelHeight:  500,
		EdgeMargin:   0,
		ShotWidth:    26,
		ShotHeight:   33,
		DieWidth:     5,
		DieHeight:    5,
		ScribeX:      0.2,
		ScribeY:      0.2,
		DefectRate:   0.5,
		CriticalArea: 25,
		Model:        "Poisson",
		Seed:         42,
		Runs:         1,
		Workers:      0,
	}
}

// EngineConfig parses the string-typed fields and assembles the engine's
// immutable configuration. Numeric validation is the engine's job; only
// name parsing can fail here.
func (c Config) EngineConfig() (engine.Config, error) {
	shape, err := domain.ParseShape(c.Shape)
	if err != nil {
		return engine.Config{}, err
	}
	model, err := domain.ParseModelKind(c.Model)
	if err != nil {
		return engine.Config{}, err
	}
	return engine.Config{
		Substrate: domain.Substrate{
			Shape:      shape,
			Diameter:   c.Diameter,
			Width:      c.PanelWidth,
			Height:     c.PanelHeight,
			EdgeMargin: c.EdgeMargin,
		},
		Reticle: domain.Reticle{Width: c.ShotWidth, Height: c.ShotHeight},
		Die: domain.Die{
			Width:   c.DieWidth,
			Height:  c.DieHeight,
			ScribeX: c.ScribeX,
			ScribeY: c.ScribeY,
		},
		Yield: domain.YieldParams{
			DefectRate:   c.DefectRate,
			CriticalArea: c.CriticalArea,
			Model:        model,
		},
		Seed:    c.Seed,
		Runs:    c.Runs,
		Workers: c.Workers,
	}, nil
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't
// been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value if positive and flag not changed.
// Dimensions that must be positive use this; zero stays "unset".
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloatPtr sets a float64 from an optional value if present and flag
// not changed. Fields where zero is meaningful (margins, scribe widths,
// rates) use pointers so an explicit zero still applies.
func (s *configSetter) setFloatPtr(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt64Ptr sets an int64 from an optional value if present and flag
// not changed. Used for the seed, where zero and negatives are valid.
func (s *configSetter) setInt64Ptr(flag string, value *int64, dst *int64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setFloatFromString parses a string to float64 and sets the destination
// if valid. Used for environment variables, where presence of the
// variable itself marks the value as set, so zero applies directly.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = f
	return nil
}

// setIntFromString parses a string to int and sets the destination if valid.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setInt64FromString parses a string to int64 and sets the destination if valid.
func (s *configSetter) setInt64FromString(flag, value string, dst *int64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
