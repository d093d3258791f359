package testutil

import (
	"testing"

	"github.com/hupe1980/fastcluster/model"
	"github.com/stretchr/testify/assert"
)

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)
	b := Bounds{MinX: -10, MinY: 5, MaxX: 10, MaxY: 6}

	pts := rng.UniformPoints(64, b)

	assert.Len(t, pts, 64)
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, b.MinX)
		assert.Less(t, p.X, b.MaxX)
		assert.GreaterOrEqual(t, p.Y, b.MinY)
		assert.Less(t, p.Y, b.MaxY)
	}
}

func TestUniformPointsDeterministic(t *testing.T) {
	b := Bounds{MaxX: 1, MaxY: 1}

	a := NewRNG(42).UniformPoints(16, b)
	c := NewRNG(42).UniformPoints(16, b)
	assert.Equal(t, a, c)
}

func TestGaussianBlobs(t *testing.T) {
	rng := NewRNG(4711)
	centers := []model.Point{{X: 0, Y: 0}, {X: 1000, Y: 1000}}

	pts := rng.GaussianBlobs(centers, 50, 1)

	assert.Len(t, pts, 100)
	for i, p := range pts {
		c := centers[i/50]
		assert.InDelta(t, c.X, p.X, 10)
		assert.InDelta(t, c.Y, p.Y, 10)
	}
}

func TestShuffle(t *testing.T) {
	rng := NewRNG(4711)
	pts := MarkerFixture()

	shuffled := rng.Shuffle(pts)

	assert.ElementsMatch(t, pts, shuffled)
	assert.Equal(t, MarkerFixture(), pts, "input is not modified")
}

func TestMarkerFixture(t *testing.T) {
	a := MarkerFixture()
	a[0] = model.Point{}

	assert.Len(t, MarkerFixture(), 23)
	assert.NotEqual(t, a[0], MarkerFixture()[0])
}
