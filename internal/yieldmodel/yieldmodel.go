// Package yieldmodel holds the closed-form yield models. Each model maps
// the expected defect count per die x = D*A (defect rate times critical
// area) to a yield fraction in [0,1].
package yieldmodel

import (
	"math"

	"github.com/fabtooling/dieyield/internal/domain"
)

// Fraction computes the yield fraction for the given parameters. It is
// total on DefectRate, CriticalArea >= 0: every model returns exactly 1
// at x = 0 (zero expected defects means certain yield), and the result is
// clamped to [0,1] to guard against floating-point drift.
func Fraction(p domain.YieldParams) float64 {
	x := p.DefectRate * p.CriticalArea
	if x == 0 {
		// Murphy's raw formula is 0/0 here; the limit is 1 for all models.
		return 1
	}

	var f float64
	switch p.Model {
	case domain.Poisson:
		f = math.Exp(-x)
	case domain.Murphy:
		r := (1 - math.Exp(-x)) / x
		f = r * r
	case domain.Rectangular:
		f = 1 / (1 + x)
	case domain.Moore:
		f = math.Exp(-math.Sqrt(x))
	case domain.Seeds:
		f = 1 / ((1 + x) * (1 + x))
	default:
		f = math.Exp(-x)
	}

	return clamp01(f)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
