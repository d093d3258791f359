// Package testutil provides testing utilities for fastcluster.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic point generators and small fixtures.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(500, testutil.Bounds{MaxX: 1000, MaxY: 1000})
//	blobs := rng.GaussianBlobs(centers, 50, 4.0) // dense groups around centers
//
// # Fixtures
//
//	pts := testutil.MarkerFixture() // screen-space map markers
package testutil
