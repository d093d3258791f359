package engine

import (
	"fmt"
	"math"
)

// Config holds the merge criteria. It is fixed for the lifetime of an Engine.
type Config struct {
	// Separation is the maximum distance between a point and a cluster
	// centroid for the point to join that cluster. Zero lifts the constraint.
	Separation float64

	// Resolution is the side length of the coarse grid. A point joins a
	// cluster whose centroid lies in the same cell. Zero disables the grid.
	Resolution float64
}

// Validate checks that both criteria are finite and non-negative.
func (c Config) Validate() error {
	if err := checkLength("separation", c.Separation); err != nil {
		return err
	}
	return checkLength("resolution", c.Resolution)
}

// Unconstrained reports whether any existing cluster may absorb a point.
func (c Config) Unconstrained() bool {
	return c.Separation == 0
}

// lookupPitch returns the cell size of the candidate lookup grid: the
// resolution when set, otherwise twice the separation.
func (c Config) lookupPitch() float64 {
	if c.Resolution > 0 {
		return c.Resolution
	}
	return 2 * c.Separation
}

// lookupRadius returns the Chebyshev radius, in lookup cells, that covers
// every centroid within Separation of a point. The small relative slack
// absorbs rounding in the quantization.
func (c Config) lookupRadius() int {
	pitch := c.lookupPitch()
	if pitch <= 0 {
		return 0
	}
	q := math.Floor(c.Separation / pitch * (1 + 1e-9))
	if q > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(q) + 1
}

func checkLength(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s must be a finite value >= 0, got %v", ErrInvalidConfig, name, v)
	}
	return nil
}
