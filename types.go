package fastcluster

import (
	"github.com/hupe1980/fastcluster/internal/engine"
	"github.com/hupe1980/fastcluster/model"
)

// Unconstrained is the separation that lifts the distance limit:
// any existing cluster may absorb a new point.
const Unconstrained float64 = 0

type (
	// Point is a two-dimensional coordinate.
	Point = model.Point
	// Cluster is a group of merged points with its centroid and size.
	Cluster = model.Cluster
	// ClusterID is the creation-ordered handle of a cluster.
	ClusterID = model.ClusterID
	// Stats is a point-in-time view of a clusterer's size.
	Stats = engine.Stats
	// Strategy selects how candidate clusters are looked up.
	Strategy = engine.Strategy
)

const (
	// StrategyGrid looks candidates up in a spatial grid index.
	StrategyGrid = engine.StrategyGrid
	// StrategyScan compares every point against every cluster.
	StrategyScan = engine.StrategyScan
)

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return model.Pt(x, y)
}

// SortClusters sorts clusters ascending by size, then by X.
func SortClusters(clusters []Cluster) {
	model.SortClusters(clusters)
}

// ParseStrategy parses "grid" or "scan".
func ParseStrategy(s string) (Strategy, error) {
	return engine.ParseStrategy(s)
}

// Total returns the number of points held by clusters.
func Total(clusters []Cluster) int {
	return model.Total(clusters)
}
