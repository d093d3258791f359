package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/fastcluster/model"
)

// Bounds is an axis-aligned rectangle.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RNG wraps a seeded random number generator.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
	}
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformPoints generates num points uniformly distributed inside b.
func (r *RNG) UniformPoints(num int, b Bounds) []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]model.Point, num)
	for i := range points {
		points[i] = model.Point{
			X: b.MinX + r.rand.Float64()*(b.MaxX-b.MinX),
			Y: b.MinY + r.rand.Float64()*(b.MaxY-b.MinY),
		}
	}
	return points
}

// GaussianBlobs generates perBlob normally distributed points around every
// center. Points are emitted blob by blob.
func (r *RNG) GaussianBlobs(centers []model.Point, perBlob int, stddev float64) []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]model.Point, 0, len(centers)*perBlob)
	for _, c := range centers {
		for range perBlob {
			points = append(points, model.Point{
				X: c.X + r.rand.NormFloat64()*stddev,
				Y: c.Y + r.rand.NormFloat64()*stddev,
			})
		}
	}
	return points
}

// Shuffle returns a shuffled copy of points.
func (r *RNG) Shuffle(points []model.Point) []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Point, len(points))
	copy(out, points)
	r.rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// markers are screen-space marker positions from a tiled map view.
var markers = []model.Point{
	{X: 237, Y: 434}, {X: 282, Y: 435}, {X: 281, Y: 429}, {X: 241, Y: 427},
	{X: 259, Y: 434}, {X: 499, Y: 218}, {X: 254, Y: 431}, {X: 222, Y: 433},
	{X: 253, Y: 441}, {X: 212, Y: 440}, {X: 252, Y: 432}, {X: 279, Y: 433},
	{X: 248, Y: 428}, {X: 249, Y: 202}, {X: 249, Y: 202}, {X: 252, Y: 202},
	{X: 252, Y: 202}, {X: 562, Y: 402}, {X: 728, Y: 23}, {X: 227, Y: 424},
	{X: 267, Y: 428}, {X: 247, Y: 438}, {X: 290, Y: 452},
}

// MarkerFixture returns a copy of a small set of real map marker positions.
func MarkerFixture() []model.Point {
	out := make([]model.Point, len(markers))
	copy(out, markers)
	return out
}
