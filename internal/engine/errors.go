package engine

import (
	"errors"
	"fmt"

	"github.com/hupe1980/fastcluster/model"
)

var (
	// ErrInvalidConfig is returned when separation or resolution is negative or not finite.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrInvalidPoint is returned when a coordinate is NaN or infinite.
	ErrInvalidPoint = errors.New("invalid point")

	// ErrInvalidStrategy is returned for an unknown candidate lookup strategy.
	ErrInvalidStrategy = errors.New("invalid strategy")
)

// PointError reports an invalid point inside a batch.
//
// errors.Is(err, ErrInvalidPoint) holds for every PointError.
type PointError struct {
	Index int
	Point model.Point
}

func (e *PointError) Error() string {
	return fmt.Sprintf("invalid point at index %d: %v", e.Index, e.Point)
}

func (e *PointError) Unwrap() error { return ErrInvalidPoint }
