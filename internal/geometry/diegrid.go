package geometry

import "github.com/fabtooling/dieyield/internal/domain"

// DicePerShot returns how many die columns and rows fit in one reticle
// shot. The scribe gap sits between dice only, so one extra scribe width
// is credited to the shot before dividing.
func DicePerShot(r domain.Reticle, d domain.Die) (cols, rows int) {
	cols = int((r.Width + d.ScribeX) / (d.Width + d.ScribeX))
	rows = int((r.Height + d.ScribeY) / (d.Height + d.ScribeY))
	return cols, rows
}

// PlaceDice appends one DieInstance per die position within the shot to
// dst and returns the extended slice. Positions start at the shot origin
// and advance by die size plus scribe, columns in x first, rows in y
// within each column, matching the tiling order contract.
func PlaceDice(dst []domain.DieInstance, shot domain.Rect, d domain.Die) []domain.DieInstance {
	cols, rows := DicePerShot(domain.Reticle{Width: shot.Width, Height: shot.Height}, d)
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			dst = append(dst, domain.DieInstance{
				Rect: domain.Rect{
					X:      shot.X + float64(i)*(d.Width+d.ScribeX),
					Y:      shot.Y + float64(j)*(d.Height+d.ScribeY),
					Width:  d.Width,
					Height: d.Height,
				},
				Status: domain.StatusInside,
			})
		}
	}
	return dst
}
