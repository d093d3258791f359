// Package model defines the value types shared by the clustering engine.
//
// # Identity Types
//
//   - ClusterID: stable, creation-ordered handle of a cluster (uint32)
//
// # Data Types
//
//   - Point: a two-dimensional coordinate fed into the engine
//   - Cluster: an aggregate with a centroid and a point count
//
// # Ordering
//
// Clusters compare by size only. Reports and tests that need a total order
// use SortClusters, which breaks size ties by the X coordinate:
//
//	clusters := c.Clusters()
//	model.SortClusters(clusters)
package model
