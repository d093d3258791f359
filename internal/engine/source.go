package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/hupe1980/fastcluster/internal/spatial"
	"github.com/hupe1980/fastcluster/model"
)

// Strategy selects how the engine looks up candidate clusters.
type Strategy int

const (
	// StrategyGrid looks candidates up in a spatial grid index.
	StrategyGrid Strategy = iota
	// StrategyScan visits every live cluster for every point.
	StrategyScan
)

func (s Strategy) String() string {
	switch s {
	case StrategyGrid:
		return "grid"
	case StrategyScan:
		return "scan"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// ParseStrategy parses the text form of a Strategy ("grid" or "scan").
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grid", "":
		return StrategyGrid, nil
	case "scan":
		return StrategyScan, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	switch s {
	case StrategyGrid, StrategyScan:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidStrategy, int(s))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// CandidateSource yields a superset of the clusters that may absorb a point.
// Sources never decide eligibility; the engine applies the merge policy to
// whatever they visit, so every source yields the same clusters.
type CandidateSource interface {
	// Candidates calls visit for each candidate. live is the number of
	// clusters currently in the arena; IDs are 0..live-1.
	Candidates(p model.Point, live int, visit func(model.ClusterID))

	// Track records a newly created cluster at its centroid.
	Track(id model.ClusterID, at model.Point)

	// Moved records that a merge shifted a centroid.
	Moved(id model.ClusterID, from, to model.Point)

	// Cells returns the number of occupied index cells, or 0 if unindexed.
	Cells() int
}

// NewCandidateSource returns the source implementing strategy for cfg.
// The grid strategy degrades to a scan when cfg gives it no usable pitch.
func NewCandidateSource(strategy Strategy, cfg Config) (CandidateSource, error) {
	switch strategy {
	case StrategyScan:
		return scanSource{}, nil
	case StrategyGrid:
		if cfg.Unconstrained() || cfg.lookupPitch() <= 0 {
			return scanSource{}, nil
		}
		return newGridSource(cfg.lookupPitch(), cfg.lookupRadius()), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidStrategy, strategy)
	}
}

type scanSource struct{}

func (scanSource) Candidates(_ model.Point, live int, visit func(model.ClusterID)) {
	for id := 0; id < live; id++ {
		visit(model.ClusterID(id))
	}
}

func (scanSource) Track(model.ClusterID, model.Point)               {}
func (scanSource) Moved(model.ClusterID, model.Point, model.Point) {}
func (scanSource) Cells() int                                       { return 0 }

// gridSource keeps every centroid registered in a spatial index and visits
// the clusters within radius cells of the point's cell.
type gridSource struct {
	index  *spatial.Index
	radius int
	// span is the number of cells in the neighbourhood, (2*radius+1)^2.
	span int64
}

func newGridSource(pitch float64, radius int) *gridSource {
	span := int64(math.MaxInt64)
	if side := 2*int64(radius) + 1; side <= math.MaxInt32 {
		span = side * side
	}
	return &gridSource{
		index:  spatial.NewIndex(pitch),
		radius: radius,
		span:   span,
	}
}

func (s *gridSource) Candidates(p model.Point, live int, visit func(model.ClusterID)) {
	// A neighbourhood with at least as many cells as clusters costs more
	// than looking at every cluster.
	if s.span >= int64(live) {
		scanSource{}.Candidates(p, live, visit)
		return
	}

	cell, _ := s.index.CellOf(p.X, p.Y)
	s.index.Within(cell, s.radius).Iterate(func(id uint32) bool {
		visit(model.ClusterID(id))
		return true
	})
}

func (s *gridSource) Track(id model.ClusterID, at model.Point) {
	cell, _ := s.index.CellOf(at.X, at.Y)
	s.index.Register(uint32(id), cell)
}

func (s *gridSource) Moved(id model.ClusterID, from, to model.Point) {
	prev, _ := s.index.CellOf(from.X, from.Y)
	next, _ := s.index.CellOf(to.X, to.Y)
	s.index.Move(uint32(id), prev, next)
}

func (s *gridSource) Cells() int {
	return s.index.Cells()
}
