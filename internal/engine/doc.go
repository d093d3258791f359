// Package engine implements the greedy single-pass clustering engine.
//
// The engine orchestrates:
//   - An arena of clusters addressed by creation-ordered ClusterIDs
//   - A pluggable candidate source (full scan or spatial grid index)
//   - The merge policy: nearest eligible cluster wins, ties go to the oldest
//   - The incremental centroid update and index re-keying after merges
//
// A point may merge into a cluster when it falls into the same resolution
// cell as the cluster's centroid, or when it lies within the separation
// distance of that centroid. A zero separation lifts the distance constraint,
// so every point joins the first cluster.
//
// The algorithm is order sensitive: feeding the same points in a different
// order can produce different clusters.
package engine
