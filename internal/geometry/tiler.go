package geometry

import (
	"math"

	"github.com/fabtooling/dieyield/internal/domain"
)

// TileShots enumerates reticle-shot rectangles covering the substrate's
// bounding box, on a regular grid anchored at the box's lower-left corner.
// Columns advance in x first, rows in y within each column, and that order
// is load-bearing: defect injection consumes random draws die-by-die in
// exactly this shot order.
//
// Tiling is boundary-agnostic. Shots entirely outside the substrate are
// still emitted; their dice classify as Lost later. Classification happens
// per die, never per shot.
func TileShots(s domain.Substrate, r domain.Reticle) []domain.Rect {
	bounds := s.Bounds()
	cols := int(math.Ceil(bounds.Width / r.Width))
	rows := int(math.Ceil(bounds.Height / r.Height))

	shots := make([]domain.Rect, 0, cols*rows)
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			shots = append(shots, domain.Rect{
				X:      bounds.X + float64(i)*r.Width,
				Y:      bounds.Y + float64(j)*r.Height,
				Width:  r.Width,
				Height: r.Height,
			})
		}
	}
	return shots
}
