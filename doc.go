// Package fastcluster groups two-dimensional points into spatial clusters.
//
// Fastcluster is an incremental, greedy, single-pass clusterer designed to
// reduce dense point sets such as map markers into a handful of
// representative aggregates. Every cluster carries its size and centroid.
//
// # Quick Start
//
//	c, _ := fastcluster.New(25, 15) // separation 25, resolution 15
//	c.Add(237, 434)
//	c.Add(282, 435)
//	for _, cl := range c.Clusters() {
//	    fmt.Println(cl.X, cl.Y, cl.Size)
//	}
//
// # Merge Rule
//
// A new point joins the nearest existing cluster that satisfies either
// criterion, preferring the oldest cluster on exact distance ties:
//
//   - Distance: the centroid lies within the separation distance.
//   - Grid: the centroid lies in the same resolution-sized grid cell.
//
// Otherwise the point starts a new cluster. A separation of Unconstrained (0)
// lifts the distance limit, collapsing every point into one cluster; a
// resolution of 0 disables the grid criterion.
//
// The algorithm is order sensitive: the same points fed in a different order
// may cluster differently. Sort results before comparing them:
//
//	clusters := c.Clusters()
//	fastcluster.SortClusters(clusters) // by size, then X
//
// # Lookup Strategies
//
//   - StrategyGrid (default): candidates come from a roaring-bitmap grid index,
//     giving near-linear behaviour on large inputs.
//   - StrategyScan: every point is compared to every cluster. Same results,
//     useful as a reference.
//
// # Concurrency
//
// A Clusterer is safe for concurrent use. Ingest fans several producers into
// one clusterer and Consume drains a channel, optionally rate limited.
//
// # Configuration
//
// Options can also come from YAML:
//
//	cfg, _ := fastcluster.LoadConfig("cluster.yaml")
//	c, _ := fastcluster.NewFromConfig(cfg)
package fastcluster
