// Package spatial implements the coarse grid index used by the clustering
// engine to find clusters near a point without scanning all of them.
//
// A Grid quantizes coordinates into square cells. An Index maps each occupied
// cell to a roaring bitmap of cluster handles and remembers the single cell
// every handle is registered in, so a handle is never present in two buckets.
//
// The Index is not safe for concurrent use; the engine serializes access.
package spatial
