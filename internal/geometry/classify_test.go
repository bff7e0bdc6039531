package geometry

import (
	"testing"

	"github.com/fabtooling/dieyield/internal/domain"
)

func TestClassifyFourCornerRule(t *testing.T) {
	sub := domain.Substrate{Shape: domain.Panel, Width: 100, Height: 100, EdgeMargin: 10}
	b := NewBoundary(sub)

	die := func(x, y float64) domain.DieInstance {
		return domain.DieInstance{Rect: domain.Rect{X: x, Y: y, Width: 10, Height: 10}}
	}

	tests := []struct {
		name string
		die  domain.DieInstance
		want domain.DieStatus
	}{
		{"all corners inside", die(40, 40), domain.StatusInside},
		{"corners on the margin are inside", die(10, 10), domain.StatusInside},
		{"two corners out", die(5, 40), domain.StatusPartial},
		{"one corner in", die(5, 5), domain.StatusPartial},
		{"entirely outside", die(-30, -30), domain.StatusLost},
		{"in the margin band", die(-5, 40), domain.StatusPartial},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.die, b); got != tt.want {
				t.Fatalf("Classify = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyCountsCornersNotArea(t *testing.T) {
	// A die straddling the wafer edge with all four corners inside must
	// classify Inside even though its edge midpoints poke outside the
	// circle. The 4-corner rule is the contract, not geometric overlap.
	b := NewBoundary(domain.Substrate{Shape: domain.Wafer, Diameter: 200})

	// All four corners (94,+-3) and (99,+-3) sit just inside radius 100.
	die := domain.DieInstance{Rect: domain.Rect{X: 94, Y: -3, Width: 5, Height: 6}}
	for _, c := range die.Corners() {
		if c[0]*c[0]+c[1]*c[1] > 100*100 {
			t.Fatalf("test geometry wrong: corner (%g,%g) not inside", c[0], c[1])
		}
	}
	if got := Classify(die, b); got != domain.StatusInside {
		t.Fatalf("Classify = %v, want inside", got)
	}
}
