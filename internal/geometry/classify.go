package geometry

import "github.com/fabtooling/dieyield/internal/domain"

// Classify applies the four-corner boundary rule to one die:
//
//	4 corners inside -> Inside (candidate for Good/Defective)
//	1-3 corners inside -> Partial
//	0 corners inside -> Lost
//
// The corner count is a fixed tie-break, not an approximation to refine:
// reference yield numbers depend on exactly this test, so no partial-area
// or polygon-clipping logic belongs here.
func Classify(die domain.DieInstance, b Boundary) domain.DieStatus {
	inside := 0
	for _, c := range die.Corners() {
		if b.Inside(c[0], c[1]) {
			inside++
		}
	}
	switch {
	case inside == 4:
		return domain.StatusInside
	case inside > 0:
		return domain.StatusPartial
	default:
		return domain.StatusLost
	}
}
