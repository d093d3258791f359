package fastcluster

import (
	"time"

	"github.com/hupe1980/fastcluster/internal/engine"
	"golang.org/x/time/rate"
)

// Clusterer incrementally groups points into clusters.
// It is safe for concurrent use.
type Clusterer struct {
	engine  *engine.Engine
	metrics MetricsCollector
	logger  *Logger
	limiter *rate.Limiter
}

// New creates a Clusterer.
//
// separation is the maximum distance between a point and a cluster centroid
// for the point to join it; pass Unconstrained (0) to lift the limit.
// resolution is the side of the coarse grid whose cells also merge points;
// pass 0 to disable it. Negative or non-finite values return ErrInvalidConfig.
func New(separation, resolution float64, optFns ...Option) (*Clusterer, error) {
	o := applyOptions(optFns)

	cfg := engine.Config{Separation: separation, Resolution: resolution}
	logger := o.logger.WithCriteria(separation, resolution)

	eng, err := engine.New(cfg,
		engine.WithStrategy(o.strategy),
		engine.WithLogger(logger.Logger),
	)
	if err != nil {
		return nil, err
	}

	c := &Clusterer{
		engine:  eng,
		metrics: o.metricsCollector,
		logger:  logger,
	}
	if o.ingestLimit > 0 && o.ingestLimit != rate.Inf {
		c.limiter = rate.NewLimiter(o.ingestLimit, max(o.ingestBurst, 1))
	}

	if len(o.points) > 0 {
		if err := c.AddPoints(o.points); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Separation returns the configured separation.
func (c *Clusterer) Separation() float64 {
	return c.engine.Config().Separation
}

// Resolution returns the configured resolution.
func (c *Clusterer) Resolution() float64 {
	return c.engine.Config().Resolution
}

// Strategy returns the configured lookup strategy.
func (c *Clusterer) Strategy() Strategy {
	return c.engine.Strategy()
}

// Add ingests the point (x, y).
func (c *Clusterer) Add(x, y float64) error {
	return c.Append(Pt(x, y))
}

// Append ingests p. A non-finite coordinate returns ErrInvalidPoint and
// leaves the clusterer unchanged.
func (c *Clusterer) Append(p Point) error {
	start := time.Now()
	placement, err := c.engine.Add(p)
	c.metrics.RecordAdd(time.Since(start), placement.Merged, err)
	c.logger.LogAdd(p, placement.ID, placement.Merged, err)
	return err
}

// AddPoints ingests points in order. The batch is validated up front: if any
// point is invalid a *PointError is returned and nothing is added.
func (c *Clusterer) AddPoints(points []Point) error {
	start := time.Now()
	res, err := c.engine.AddBatch(points)
	c.metrics.RecordBatch(len(points), res.Merged, time.Since(start), err)
	c.logger.LogBatch(len(points), res.Merged, err)
	return err
}

// Points returns every added point in insertion order.
func (c *Clusterer) Points() []Point {
	return c.engine.Points()
}

// Clusters returns a snapshot of the current clusters in creation order.
// The order carries no meaning; use SortClusters for a stable order.
func (c *Clusterer) Clusters() []Cluster {
	start := time.Now()
	clusters := c.engine.Clusters()
	c.metrics.RecordClusters(len(clusters), time.Since(start))
	return clusters
}

// Stats returns the current number of points, clusters and index cells.
func (c *Clusterer) Stats() Stats {
	return c.engine.Stats()
}
