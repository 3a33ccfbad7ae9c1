package engine

import (
	"errors"
	"fmt"
)

// ErrEmptyRadius is returned when a pass is started without any radius
// values. It is reported before any work is scheduled.
var ErrEmptyRadius = errors.New("engine: radius list is empty")

// Radius holds the per-axis half-window extents of a neighborhood. A radius
// of zero on an axis collapses the window to the center along that axis.
type Radius struct {
	X, Y, Z int
}

// NewRadius builds a Radius from a list of one to three values. A missing
// Y radius defaults to the X radius; a missing Z radius defaults to zero,
// which keeps single-slice filtering the natural default for 2D data.
func NewRadius(values []int) (Radius, error) {
	if len(values) == 0 {
		return Radius{}, ErrEmptyRadius
	}
	if len(values) > 3 {
		return Radius{}, fmt.Errorf("engine: at most 3 radius values allowed, got %d", len(values))
	}
	for _, v := range values {
		if v < 0 {
			return Radius{}, fmt.Errorf("engine: radius values must be non-negative, got %d", v)
		}
	}

	r := Radius{X: values[0], Y: values[0], Z: 0}
	if len(values) >= 2 {
		r.Y = values[1]
	}
	if len(values) == 3 {
		r.Z = values[2]
	}
	return r, nil
}

// MaxWindow returns the largest possible neighborhood size for this radius,
// reached by pixels at least the radius away from every boundary.
func (r Radius) MaxWindow() int {
	return (2*r.X + 1) * (2*r.Y + 1) * (2*r.Z + 1)
}
