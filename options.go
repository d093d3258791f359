package fastcluster

import (
	"log/slog"

	"golang.org/x/time/rate"
)

type options struct {
	strategy         Strategy
	metricsCollector MetricsCollector
	logger           *Logger
	points           []Point
	ingestLimit      rate.Limit
	ingestBurst      int
}

// Option configures Clusterer constructor behavior.
type Option func(*options)

// WithStrategy selects the candidate lookup strategy.
// Default: StrategyGrid.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithPoints seeds the clusterer with points. The result is identical to
// creating an empty clusterer and adding each point in order.
func WithPoints(points []Point) Option {
	return func(o *options) {
		o.points = append(o.points, points...)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &fastcluster.BasicMetricsCollector{}
//	c, _ := fastcluster.New(25, 15, fastcluster.WithMetricsCollector(metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
//	fmt.Printf("Adds: %d, merges: %d\n", stats.AddCount, stats.Merges)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := fastcluster.NewJSONLogger(slog.LevelInfo)
//	c, _ := fastcluster.New(25, 15, fastcluster.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithIngestRate throttles Consume to limit points per second with the
// given burst. A limit of rate.Inf or 0 disables throttling.
func WithIngestRate(limit rate.Limit, burst int) Option {
	return func(o *options) {
		o.ingestLimit = limit
		o.ingestBurst = burst
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		strategy:         StrategyGrid,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
