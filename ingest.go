package fastcluster

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Ingest adds the points of several producers concurrently, one goroutine per
// source. Each source is added in its own order, but sources interleave
// nondeterministically, so repeated runs may produce different clusters.
//
// The first failing source cancels the others. Points added before the
// failure stay in the clusterer.
func (c *Clusterer) Ingest(ctx context.Context, sources ...[]Point) error {
	if len(sources) == 0 {
		return ErrNoSources
	}

	var added atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	for _, src := range sources {
		g.Go(func() error {
			for _, p := range src {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := c.Append(p); err != nil {
					return err
				}
				added.Add(1)
			}
			return nil
		})
	}

	err := g.Wait()
	c.logger.LogIngest(ctx, len(sources), int(added.Load()), err)
	return err
}

// Consume adds points received from ch until ch is closed or ctx is done.
// With WithIngestRate every point first waits for the rate limiter.
// It returns the number of points added.
func (c *Clusterer) Consume(ctx context.Context, ch <-chan Point) (int, error) {
	n, err := c.consume(ctx, ch)
	c.logger.LogIngest(ctx, 1, n, err)
	return n, err
}

func (c *Clusterer) consume(ctx context.Context, ch <-chan Point) (int, error) {
	n := 0
	for {
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		case p, ok := <-ch:
			if !ok {
				return n, nil
			}
			if c.limiter != nil {
				if err := c.limiter.Wait(ctx); err != nil {
					return n, err
				}
			}
			if err := c.Append(p); err != nil {
				return n, err
			}
			n++
		}
	}
}
