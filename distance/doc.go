// Package distance provides planar distance calculations between points.
//
// # Usage
//
//	d := distance.Euclidean(a, b)
package distance
