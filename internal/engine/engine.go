package engine

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/hupe1980/fastcluster/distance"
	"github.com/hupe1980/fastcluster/internal/spatial"
	"github.com/hupe1980/fastcluster/model"
)

// Engine groups points into clusters one point at a time.
//
// Engine is safe for concurrent use. Add and AddBatch hold an exclusive lock
// for the whole merge decision and state update; readers share a read lock.
type Engine struct {
	cfg      Config
	strategy Strategy
	logger   *slog.Logger

	mu       sync.RWMutex
	points   []model.Point
	clusters []model.Cluster
	// cells[id] is the resolution cell of clusters[id]'s centroid.
	// Only meaningful when grid is enabled.
	cells  []spatial.Key
	grid   spatial.Grid
	source CandidateSource
}

// Option defines a configuration option for the Engine.
type Option func(*Engine)

// WithLogger sets the logger for the engine.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithStrategy selects the candidate lookup strategy. Default: StrategyGrid.
func WithStrategy(s Strategy) Option {
	return func(e *Engine) {
		e.strategy = s
	}
}

// WithCandidateSource installs a custom candidate source, overriding the strategy.
// The source must visit a superset of the eligible clusters.
func WithCandidateSource(src CandidateSource) Option {
	return func(e *Engine) {
		e.source = src
	}
}

// Placement describes where an added point went.
type Placement struct {
	ID     model.ClusterID
	Merged bool
}

// BatchResult summarizes an AddBatch call.
type BatchResult struct {
	Added   int
	Merged  int
	Created int
}

// Stats is a point-in-time view of the engine's size.
type Stats struct {
	Points   int
	Clusters int
	Cells    int
}

// New creates an engine for cfg.
func New(cfg Config, optFns ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:      cfg,
		strategy: StrategyGrid,
		grid:     spatial.Grid{Size: cfg.Resolution},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(e)
		}
	}

	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	if e.source == nil {
		src, err := NewCandidateSource(e.strategy, cfg)
		if err != nil {
			return nil, err
		}
		e.source = src
	}

	return e, nil
}

// Config returns the engine's merge criteria.
func (e *Engine) Config() Config {
	return e.cfg
}

// Strategy returns the configured lookup strategy.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Add ingests one point. A non-finite coordinate is rejected with
// ErrInvalidPoint and leaves the engine unchanged.
func (e *Engine) Add(p model.Point) (Placement, error) {
	if !p.IsFinite() {
		return Placement{}, fmt.Errorf("%w: %v", ErrInvalidPoint, p)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.place(p), nil
}

// AddBatch ingests points in order. The whole batch is validated first, so
// an invalid point (reported as *PointError) leaves the engine unchanged.
func (e *Engine) AddBatch(points []model.Point) (BatchResult, error) {
	for i, p := range points {
		if !p.IsFinite() {
			return BatchResult{}, &PointError{Index: i, Point: p}
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	res := BatchResult{Added: len(points)}
	for _, p := range points {
		if e.place(p).Merged {
			res.Merged++
		} else {
			res.Created++
		}
	}
	return res, nil
}

// Points returns the added points in insertion order.
func (e *Engine) Points() []model.Point {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]model.Point, len(e.points))
	copy(out, e.points)
	return out
}

// Clusters returns a copy of the current clusters in creation order.
func (e *Engine) Clusters() []model.Cluster {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]model.Cluster, len(e.clusters))
	copy(out, e.clusters)
	return out
}

// Cluster returns the cluster with the given id.
func (e *Engine) Cluster(id model.ClusterID) (model.Cluster, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if int(id) >= len(e.clusters) {
		return model.Cluster{}, false
	}
	return e.clusters[id], true
}

// Stats returns the current number of points, clusters and index cells.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return Stats{
		Points:   len(e.points),
		Clusters: len(e.clusters),
		Cells:    e.source.Cells(),
	}
}

// place runs the merge policy for one validated point. Caller holds e.mu.
func (e *Engine) place(p model.Point) Placement {
	e.points = append(e.points, p)

	cell, gridded := e.grid.KeyOf(p.X, p.Y)
	if id, ok := e.nearest(p, cell, gridded); ok {
		e.merge(id, p)
		return Placement{ID: id, Merged: true}
	}
	return Placement{ID: e.create(p, cell), Merged: false}
}

// nearest returns the eligible cluster closest to p. Ties go to the
// smallest id, i.e. the cluster created first.
func (e *Engine) nearest(p model.Point, cell spatial.Key, gridded bool) (model.ClusterID, bool) {
	var (
		best     model.ClusterID
		bestDist = math.Inf(1)
		found    bool
	)

	e.source.Candidates(p, len(e.clusters), func(id model.ClusterID) {
		d := distance.Euclidean(p, e.clusters[id].Centroid())
		if !e.eligible(id, d, cell, gridded) {
			return
		}
		if !found || d < bestDist || (d == bestDist && id < best) {
			best, bestDist, found = id, d, true
		}
	})

	return best, found
}

func (e *Engine) eligible(id model.ClusterID, d float64, cell spatial.Key, gridded bool) bool {
	switch {
	case gridded && e.cells[id] == cell:
		return true
	case e.cfg.Unconstrained():
		return true
	default:
		return d <= e.cfg.Separation
	}
}

func (e *Engine) merge(id model.ClusterID, p model.Point) {
	c := &e.clusters[id]
	from := c.Centroid()
	c.Absorb(model.Singleton(p))

	if cell, ok := e.grid.KeyOf(c.X, c.Y); ok {
		e.cells[id] = cell
	}
	e.source.Moved(id, from, c.Centroid())
}

func (e *Engine) create(p model.Point, cell spatial.Key) model.ClusterID {
	id := model.ClusterID(len(e.clusters))
	e.clusters = append(e.clusters, model.Singleton(p))
	e.cells = append(e.cells, cell)
	e.source.Track(id, p)

	e.logger.Debug("cluster created", "id", id, "x", p.X, "y", p.Y)
	return id
}
