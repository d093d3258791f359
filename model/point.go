package model

import (
	"fmt"
	"math"
)

// Point is a two-dimensional coordinate.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// IsFinite reports whether both coordinates are neither NaN nor ±Inf.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("Pt(%g, %g)", p.X, p.Y)
}
