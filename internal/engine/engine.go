// Package engine runs the full yield calculation: validation, reticle
// tiling, die placement, boundary classification, defect injection, and
// tallying. The pipeline is a single deterministic pass; its only
// randomness is the per-die Bernoulli draw, fed by an explicit seed so
// identical configurations reproduce identical grids.
package engine

import (
	"fmt"

	"github.com/fabtooling/dieyield/internal/domain"
	"github.com/fabtooling/dieyield/internal/geometry"
	"github.com/fabtooling/dieyield/internal/yieldmodel"
	"github.com/fabtooling/dieyield/pkg/log"
)

// Config is the immutable input to one calculation. Construct it once and
// pass it by value; no component mutates it.
type Config struct {
	Substrate domain.Substrate
	Reticle   domain.Reticle
	Die       domain.Die
	Yield     domain.YieldParams

	// Seed feeds defect injection. Monte Carlo run k draws from Seed+k.
	Seed int64

	// Runs is the number of Monte Carlo repetitions, at least 1. Geometry
	// and classification are computed once; only defect injection repeats.
	Runs int

	// Workers selects the simulation path: 0 or 1 runs the sequential
	// single-generator path, >1 shards dice across that many goroutines
	// with per-die deterministic sub-seeding. Each path is reproducible
	// under a fixed seed regardless of worker count.
	Workers int

	// Logger receives progress messages. Nil means silent.
	Logger log.Logger
}

// Validate fails fast on every configuration error before any tiling
// happens, so a bad input never produces a partial computation.
func (c Config) Validate() error {
	if err := c.Substrate.Validate(); err != nil {
		return err
	}
	if err := c.Reticle.Validate(); err != nil {
		return err
	}
	if err := c.Die.Validate(c.Reticle); err != nil {
		return err
	}
	if err := c.Yield.Validate(); err != nil {
		return err
	}
	if cols, rows := geometry.DicePerShot(c.Reticle, c.Die); cols == 0 || rows == 0 {
		return fmt.Errorf("%w: no die fits in a %gx%g reticle shot",
			domain.ErrInvalidConfiguration, c.Reticle.Width, c.Reticle.Height)
	}
	if c.Runs < 1 {
		return fmt.Errorf("%w: runs must be at least 1", domain.ErrInvalidConfiguration)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", domain.ErrInvalidConfiguration)
	}
	return nil
}

// Run is the outcome of one Monte Carlo repetition: the fully classified
// die grid in tiling order plus its tally.
type Run struct {
	Dice   []domain.DieInstance `json:"dice"`
	Result domain.Result        `json:"result"`
}

// Output collects everything a renderer or report needs.
type Output struct {
	// Shots are the reticle-shot rectangles in tiling order, for overlay.
	Shots []domain.Rect `json:"shots"`

	// YieldFraction is the model's per-die survival probability.
	YieldFraction float64 `json:"yield_fraction"`

	// Runs holds one entry per Monte Carlo repetition.
	Runs []Run `json:"runs"`

	// MeanFabYield averages FabYield over all runs.
	MeanFabYield float64 `json:"mean_fab_yield"`
}

// Calculate validates the configuration and runs the pipeline.
func Calculate(cfg Config) (*Output, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	shots := geometry.TileShots(cfg.Substrate, cfg.Reticle)

	base := make([]domain.DieInstance, 0, estimateDice(cfg, len(shots)))
	for _, shot := range shots {
		base = geometry.PlaceDice(base, shot, cfg.Die)
	}

	boundary := geometry.NewBoundary(cfg.Substrate)
	classify(base, boundary, cfg.Workers)

	fraction := yieldmodel.Fraction(cfg.Yield)
	logger.Debug("geometry computed",
		log.Int("shots", len(shots)),
		log.Int("dice", len(base)),
		log.Float64("yield_fraction", fraction))

	out := &Output{
		Shots:         shots,
		YieldFraction: fraction,
		Runs:          make([]Run, 0, cfg.Runs),
	}

	var yieldSum float64
	for k := 0; k < cfg.Runs; k++ {
		dice := make([]domain.DieInstance, len(base))
		copy(dice, base)

		injectDefects(dice, fraction, cfg.Seed+int64(k), cfg.Workers)

		result := tally(dice)
		yieldSum += result.FabYield
		out.Runs = append(out.Runs, Run{Dice: dice, Result: result})
	}
	out.MeanFabYield = yieldSum / float64(cfg.Runs)

	return out, nil
}

func estimateDice(cfg Config, shots int) int {
	cols, rows := geometry.DicePerShot(cfg.Reticle, cfg.Die)
	return shots * cols * rows
}

// tally counts statuses and computes the fab yield over physical dice.
// The result is always a defined number: zero physical dice yield 0.
func tally(dice []domain.DieInstance) domain.Result {
	var r domain.Result
	r.Total = len(dice)
	for _, d := range dice {
		switch d.Status {
		case domain.StatusGood:
			r.Good++
		case domain.StatusDefective:
			r.Defective++
		case domain.StatusPartial:
			r.Partial++
		case domain.StatusLost:
			r.Lost++
		}
	}
	if physical := r.Physical(); physical > 0 {
		r.FabYield = float64(r.Good) / float64(physical)
	}
	return r
}
