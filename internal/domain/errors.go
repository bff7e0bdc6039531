package domain

import "errors"

// Domain errors returned by the public API, checkable with errors.Is.
var (
	// ErrInvalidConfiguration is returned for non-positive required
	// dimensions, negative rates or margins, unknown model names, or a
	// die that cannot fit inside the reticle shot at all.
	ErrInvalidConfiguration = errors.New("dieyield: invalid configuration")

	// ErrDegenerateGeometry is returned when the edge margin consumes the
	// entire substrate, leaving no effective area to place dice in.
	ErrDegenerateGeometry = errors.New("dieyield: degenerate geometry")
)
