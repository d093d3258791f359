// Package promcollector exports fastcluster operation metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, err := promcollector.New(reg)
//	if err != nil { ... }
//	c, _ := fastcluster.New(25, 15, fastcluster.WithMetricsCollector(mc))
package promcollector

import (
	"time"

	"github.com/hupe1980/fastcluster"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fastcluster"

var _ fastcluster.MetricsCollector = (*Collector)(nil)

// Collector implements fastcluster.MetricsCollector with Prometheus metrics.
type Collector struct {
	opLatency *prometheus.HistogramVec
	points    *prometheus.CounterVec
	clusters  prometheus.Gauge
}

// New creates a Collector and registers its metrics with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_latency_seconds",
			Help:      "Latency of clusterer operations",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 12),
		}, []string{"op", "status"}),
		points: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_total",
			Help:      "Points ingested, by outcome",
		}, []string{"outcome"}),
		clusters: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "clusters",
			Help:      "Number of clusters at the last read",
		}),
	}

	for _, m := range []prometheus.Collector{c.opLatency, c.points, c.clusters} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordAdd implements fastcluster.MetricsCollector.
func (c *Collector) RecordAdd(d time.Duration, merged bool, err error) {
	c.opLatency.WithLabelValues("add", status(err)).Observe(d.Seconds())
	switch {
	case err != nil:
		c.points.WithLabelValues("rejected").Inc()
	case merged:
		c.points.WithLabelValues("merged").Inc()
	default:
		c.points.WithLabelValues("created").Inc()
	}
}

// RecordBatch implements fastcluster.MetricsCollector.
func (c *Collector) RecordBatch(count, merged int, d time.Duration, err error) {
	c.opLatency.WithLabelValues("batch", status(err)).Observe(d.Seconds())
	if err != nil {
		c.points.WithLabelValues("rejected").Add(float64(count))
		return
	}
	c.points.WithLabelValues("merged").Add(float64(merged))
	c.points.WithLabelValues("created").Add(float64(count - merged))
}

// RecordClusters implements fastcluster.MetricsCollector.
func (c *Collector) RecordClusters(clusters int, d time.Duration) {
	c.opLatency.WithLabelValues("clusters", "success").Observe(d.Seconds())
	c.clusters.Set(float64(clusters))
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
