package spatial

import (
	"fmt"
	"math"
)

// maxCoord bounds cell coordinates so that neighbourhood arithmetic
// (coordinate ± radius, distances between cells) cannot overflow int64.
const maxCoord = int64(1) << 61

// Cell is a quantized grid coordinate used as an index bucket key.
// Coordinates saturate at ±maxCoord, so far-apart cells may share a Cell;
// use Key where distinct cells must never compare equal.
type Cell struct {
	X int64
	Y int64
}

// String returns a string representation of the Cell.
func (c Cell) String() string {
	return fmt.Sprintf("Cell(%d,%d)", c.X, c.Y)
}

// Chebyshev returns the Chebyshev (chessboard) distance between two cells.
func (c Cell) Chebyshev(o Cell) int64 {
	return max(absDiff(c.X, o.X), absDiff(c.Y, o.Y))
}

// Grid quantizes coordinates into square cells of side Size.
// A zero Size disables quantization.
type Grid struct {
	Size float64
}

// Enabled reports whether the grid produces cells.
func (g Grid) Enabled() bool {
	return g.Size > 0
}

// CellOf returns (floor(x/Size), floor(y/Size)).
// It returns false when the grid is disabled.
func (g Grid) CellOf(x, y float64) (Cell, bool) {
	if !g.Enabled() {
		return Cell{}, false
	}
	return Cell{X: quantize(x, g.Size), Y: quantize(y, g.Size)}, true
}

// Key is the exact cell of a coordinate, floor(x/Size) and floor(y/Size),
// kept as float64 so it never saturates.
type Key struct {
	X float64
	Y float64
}

// KeyOf returns the exact cell containing (x, y).
// It returns false when the grid is disabled.
func (g Grid) KeyOf(x, y float64) (Key, bool) {
	if !g.Enabled() {
		return Key{}, false
	}
	return Key{X: math.Floor(x / g.Size), Y: math.Floor(y / g.Size)}, true
}

func quantize(v, size float64) int64 {
	q := math.Floor(v / size)
	switch {
	case q >= float64(maxCoord):
		return maxCoord
	case q <= -float64(maxCoord):
		return -maxCoord
	}
	return int64(q)
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
