package fastcluster

import (
	"context"
	"math"
	"testing"

	"github.com/hupe1980/fastcluster/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestIngest(t *testing.T) {
	t.Run("Conservation", func(t *testing.T) {
		rng := testutil.NewRNG(11)
		bounds := testutil.Bounds{MaxX: 500, MaxY: 500}
		sources := [][]Point{
			rng.UniformPoints(300, bounds),
			rng.UniformPoints(200, bounds),
			rng.UniformPoints(100, bounds),
		}

		c := newTestClusterer(t, 20, 0)
		require.NoError(t, c.Ingest(context.Background(), sources...))

		assert.Equal(t, 600, c.Stats().Points)
		assert.Equal(t, 600, Total(c.Clusters()))
	})

	t.Run("UnconstrainedCollapses", func(t *testing.T) {
		c := newTestClusterer(t, Unconstrained, 0)
		require.NoError(t, c.Ingest(context.Background(), fourPoints, fourPoints))

		clusters := c.Clusters()
		require.Len(t, clusters, 1)
		assert.Equal(t, 8, clusters[0].Size)
	})

	t.Run("NoSources", func(t *testing.T) {
		c := newTestClusterer(t, 1, 0)
		assert.ErrorIs(t, c.Ingest(context.Background()), ErrNoSources)
	})

	t.Run("InvalidPoint", func(t *testing.T) {
		c := newTestClusterer(t, 1, 0)
		err := c.Ingest(context.Background(), fourPoints, []Point{Pt(math.NaN(), 1)})
		assert.ErrorIs(t, err, ErrInvalidPoint)
	})

	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := newTestClusterer(t, 1, 0)
		err := c.Ingest(ctx, fourPoints)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, c.Stats().Points)
	})
}

func TestConsume(t *testing.T) {
	t.Run("DrainsChannel", func(t *testing.T) {
		ch := make(chan Point, len(fourPoints))
		for _, p := range fourPoints {
			ch <- p
		}
		close(ch)

		c := newTestClusterer(t, 2, 0)
		n, err := c.Consume(context.Background(), ch)
		require.NoError(t, err)
		assert.Equal(t, 4, n)
		assert.Len(t, c.Clusters(), 2)
	})

	t.Run("RateLimited", func(t *testing.T) {
		ch := make(chan Point, 5)
		for i := range 5 {
			ch <- Pt(float64(i), 0)
		}
		close(ch)

		c := newTestClusterer(t, 2, 0, WithIngestRate(rate.Limit(10_000), 5))
		require.NotNil(t, c.limiter)

		n, err := c.Consume(context.Background(), ch)
		require.NoError(t, err)
		assert.Equal(t, 5, n)
	})

	t.Run("UnlimitedRate", func(t *testing.T) {
		c := newTestClusterer(t, 2, 0, WithIngestRate(rate.Inf, 0))
		assert.Nil(t, c.limiter)
	})

	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := newTestClusterer(t, 2, 0)
		n, err := c.Consume(ctx, make(chan Point))
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, n)
	})

	t.Run("InvalidPoint", func(t *testing.T) {
		ch := make(chan Point, 2)
		ch <- Pt(1, 1)
		ch <- Pt(math.Inf(1), 1)
		close(ch)

		c := newTestClusterer(t, 2, 0)
		n, err := c.Consume(context.Background(), ch)
		assert.ErrorIs(t, err, ErrInvalidPoint)
		assert.Equal(t, 1, n)
	})
}
