// Package dieyield computes per-die classification grids and aggregate
// yield statistics for wafers and panels tiled with reticle shots.
//
// Example usage:
//
//	cfg := dieyield.Config{
//	    Substrate: dieyield.Substrate{Shape: dieyield.Wafer, Diameter: 300},
//	    Reticle:   dieyield.Reticle{Width: 26, Height: 33},
//	    Die:       dieyield.Die{Width: 5, Height: 5, ScribeX: 0.2, ScribeY: 0.2},
//	    Yield:     dieyield.YieldParams{DefectRate: 0.5, CriticalArea: 25, Model: dieyield.Poisson},
//	    Seed:      42,
//	    Runs:      1,
//	}
//	out, err := dieyield.Calculate(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("fab yield: %.2f%%\n", 100*out.Runs[0].Result.FabYield)
package dieyield

import (
	"github.com/fabtooling/dieyield/internal/domain"
	"github.com/fabtooling/dieyield/internal/engine"
	"github.com/fabtooling/dieyield/internal/yieldmodel"
)

// Config is the immutable input to one calculation.
type Config = engine.Config

// Output collects die grids, shot rectangles, and tallies for all runs.
type Output = engine.Output

// Run is one Monte Carlo repetition's die grid and tally.
type Run = engine.Run

// Substrate describes the wafer or panel being tiled.
type Substrate = domain.Substrate

// Reticle is the exposure field repeated across the substrate.
type Reticle = domain.Reticle

// Die describes die dimensions and scribe-line spacing.
type Die = domain.Die

// YieldParams selects the yield model and its inputs.
type YieldParams = domain.YieldParams

// DieInstance is one placed die with coordinates and status.
type DieInstance = domain.DieInstance

// DieStatus classifies a placed die.
type DieStatus = domain.DieStatus

// Result tallies one run.
type Result = domain.Result

// Substrate shapes.
const (
	Wafer = domain.Wafer
	Panel = domain.Panel
)

// Yield model kinds.
const (
	Poisson     = domain.Poisson
	Murphy      = domain.Murphy
	Rectangular = domain.Rectangular
	Moore       = domain.Moore
	Seeds       = domain.Seeds
)

// Die statuses.
const (
	StatusGood      = domain.StatusGood
	StatusDefective = domain.StatusDefective
	StatusPartial   = domain.StatusPartial
	StatusLost      = domain.StatusLost
)

// Configuration errors, checkable with errors.Is.
var (
	ErrInvalidConfiguration = domain.ErrInvalidConfiguration
	ErrDegenerateGeometry   = domain.ErrDegenerateGeometry
)

// Calculate validates the configuration and runs the full pipeline:
// tiling, placement, classification, defect injection, and aggregation.
func Calculate(cfg Config) (*Output, error) {
	return engine.Calculate(cfg)
}

// YieldFraction computes the per-die survival probability for the given
// parameters without running a full calculation.
func YieldFraction(p YieldParams) float64 {
	return yieldmodel.Fraction(p)
}
