package fastcluster

import (
	"errors"

	"github.com/hupe1980/fastcluster/internal/engine"
)

var (
	// ErrInvalidConfig is returned when separation or resolution is negative
	// or not finite, or a config value is out of range.
	ErrInvalidConfig = engine.ErrInvalidConfig

	// ErrInvalidPoint is returned when a coordinate is NaN or infinite.
	// A rejected point leaves the clusterer unchanged.
	ErrInvalidPoint = engine.ErrInvalidPoint

	// ErrInvalidStrategy is returned for an unknown lookup strategy.
	ErrInvalidStrategy = engine.ErrInvalidStrategy

	// ErrNoSources is returned by Ingest when called without sources.
	ErrNoSources = errors.New("no sources")
)

// PointError reports an invalid point inside a batch.
//
// errors.Is(err, ErrInvalidPoint) holds for every PointError.
type PointError = engine.PointError
