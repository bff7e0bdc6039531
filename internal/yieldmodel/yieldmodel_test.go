package yieldmodel

import (
	"math"
	"testing"

	"github.com/fabtooling/dieyield/internal/domain"
)

func TestFractionKnownValues(t *testing.T) {
	// x = D*A = 1 for all cases.
	const d, a = 0.5, 2.0
	tests := []struct {
		model domain.ModelKind
		want  float64
	}{
		{domain.Poisson, math.Exp(-1)},
		{domain.Murphy, (1 - math.Exp(-1)) * (1 - math.Exp(-1))},
		{domain.Rectangular, 0.5},
		{domain.Moore, math.Exp(-1)},
		{domain.Seeds, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.model.String(), func(t *testing.T) {
			got := Fraction(domain.YieldParams{DefectRate: d, CriticalArea: a, Model: tt.model})
			if math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("Fraction = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFractionIsOneAtZeroExpectedDefects(t *testing.T) {
	// Zero defect rate or zero critical area means certain yield for
	// every model. Murphy is the interesting one: its raw formula is 0/0.
	params := []domain.YieldParams{
		{DefectRate: 0, CriticalArea: 25},
		{DefectRate: 0.5, CriticalArea: 0},
		{DefectRate: 0, CriticalArea: 0},
	}
	for _, m := range domain.ModelKinds() {
		for _, p := range params {
			p.Model = m
			got := Fraction(p)
			if got != 1 {
				t.Fatalf("%s: Fraction(D=%g, A=%g) = %v, want exactly 1", m, p.DefectRate, p.CriticalArea, got)
			}
			if math.IsNaN(got) {
				t.Fatalf("%s: Fraction returned NaN at x=0", m)
			}
		}
	}
}

func TestFractionStaysInUnitInterval(t *testing.T) {
	rates := []float64{0, 0.001, 0.1, 0.5, 1, 5, 100, 1e6}
	areas := []float64{0, 0.01, 1, 25, 1000}
	for _, m := range domain.ModelKinds() {
		for _, d := range rates {
			for _, a := range areas {
				got := Fraction(domain.YieldParams{DefectRate: d, CriticalArea: a, Model: m})
				if got < 0 || got > 1 || math.IsNaN(got) {
					t.Fatalf("%s: Fraction(D=%g, A=%g) = %v out of [0,1]", m, d, a, got)
				}
			}
		}
	}
}

func TestFractionMonotonicallyNonIncreasing(t *testing.T) {
	// Sweep x upward; yield must never rise.
	xs := []float64{0, 1e-9, 0.001, 0.01, 0.1, 0.5, 1, 2, 5, 10, 100, 1e4}
	for _, m := range domain.ModelKinds() {
		prev := math.Inf(1)
		for _, x := range xs {
			got := Fraction(domain.YieldParams{DefectRate: x, CriticalArea: 1, Model: m})
			if got > prev {
				t.Fatalf("%s: yield rose from %v to %v at x=%g", m, prev, got, x)
			}
			prev = got
		}
	}
}
