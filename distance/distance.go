package distance

import (
	"math"

	"github.com/hupe1980/fastcluster/model"
)

// Euclidean calculates the Euclidean distance between two points.
func Euclidean(a, b model.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
