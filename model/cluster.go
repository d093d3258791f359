package model

import (
	"cmp"
	"slices"
)

// ClusterID is the stable handle of a cluster within one engine.
// IDs are dense and assigned in creation order, so a smaller ID always
// denotes an older cluster.
type ClusterID uint32

// Cluster is a group of merged points.
// X and Y hold the centroid, the equally weighted mean of every merged point.
type Cluster struct {
	X    float64
	Y    float64
	Size int
}

// Singleton returns the cluster holding exactly p.
func Singleton(p Point) Cluster {
	return Cluster{X: p.X, Y: p.Y, Size: 1}
}

// Centroid returns the cluster's centroid.
func (c Cluster) Centroid() Point {
	return Point{X: c.X, Y: c.Y}
}

// Absorb folds other into c, weighting both centroids by their sizes.
// Absorbing a singleton is the incremental centroid update:
//
//	size' = size + 1
//	x'    = (x*size + px) / size'
func (c *Cluster) Absorb(other Cluster) {
	size := c.Size + other.Size
	c.X = (c.X*float64(c.Size) + other.X*float64(other.Size)) / float64(size)
	c.Y = (c.Y*float64(c.Size) + other.Y*float64(other.Size)) / float64(size)
	c.Size = size
}

// Compare orders clusters by size. Clusters of equal size compare equal
// regardless of position.
func Compare(a, b Cluster) int {
	return cmp.Compare(a.Size, b.Size)
}

// SortClusters sorts clusters ascending by size, then by X.
func SortClusters(clusters []Cluster) {
	slices.SortStableFunc(clusters, func(a, b Cluster) int {
		if c := Compare(a, b); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
}

// Total returns the number of points held by clusters.
func Total(clusters []Cluster) int {
	n := 0
	for _, c := range clusters {
		n += c.Size
	}
	return n
}
