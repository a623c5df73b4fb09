package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// promCollector adapts apfind.MetricsCollector to Prometheus. A batch run
// has nothing to scrape, so the registry is written to a node-exporter
// textfile when the run ends.
type promCollector struct {
	reg          *prometheus.Registry
	values       prometheus.Counter
	scanned      prometheus.Counter
	extensions   prometheus.Counter
	improvements prometheus.Counter
	errors       prometheus.Counter
	best         prometheus.Gauge
	pushDuration prometheus.Histogram
}

func newPromCollector() *promCollector {
	c := &promCollector{
		reg: prometheus.NewRegistry(),
		values: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "apfind_values_total",
			Help: "Values ingested.",
		}),
		scanned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "apfind_scanned_total",
			Help: "Earlier values examined while ingesting.",
		}),
		extensions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "apfind_extensions_total",
			Help: "Progression extensions recorded in the index.",
		}),
		improvements: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "apfind_improvements_total",
			Help: "Times the best progression grew.",
		}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "apfind_errors_total",
			Help: "Failed pushes.",
		}),
		best: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "apfind_best_length",
			Help: "Length of the best progression found.",
		}),
		pushDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "apfind_push_duration_seconds",
			Help:    "Time spent ingesting one value.",
			Buckets: prometheus.ExponentialBuckets(1e-7, 4, 12),
		}),
	}
	c.reg.MustRegister(c.values, c.scanned, c.extensions, c.improvements, c.errors, c.best, c.pushDuration)
	return c
}

func (c *promCollector) RecordValue(scanned, extensions int, duration time.Duration) {
	c.values.Inc()
	c.scanned.Add(float64(scanned))
	c.extensions.Add(float64(extensions))
	c.pushDuration.Observe(duration.Seconds())
}

func (c *promCollector) RecordImprovement(length int) {
	c.improvements.Inc()
	c.best.Set(float64(length))
}

func (c *promCollector) RecordError(error) {
	c.errors.Inc()
}

func (c *promCollector) writeTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.reg)
}
