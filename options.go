package apfind

import (
	"time"

	"github.com/hupe1980/apfind/internal/mla"
)

// DefaultProgressInterval is how often a Detector logs ingestion progress.
const DefaultProgressInterval = 10 * time.Second

type options struct {
	fanout           int
	memoryLimit      int64
	metricsCollector MetricsCollector
	logger           *Logger
	reporter         func(Progression)
	progressInterval time.Duration
}

func defaultOptions() options {
	return options{
		fanout:           mla.DefaultFanout,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		progressInterval: DefaultProgressInterval,
	}
}

// Option configures a Detector.
type Option func(*options)

// WithFanout sets the fan-out of the progression index tree: the number of
// entries per leaf and children per internal node. Must be at least 2.
//
// Small fan-outs make deep trees (useful in tests); the default of 1024
// keeps nodes around 24-32 KiB.
func WithFanout(f int) Option {
	return func(o *options) {
		o.fanout = f
	}
}

// WithMemoryLimit bounds the memory held by the number store and the
// progression index. Growth beyond the limit fails with ErrAllocationFailed.
// Zero means unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &apfind.BasicMetricsCollector{}
//	d, _ := apfind.New(apfind.WithMetricsCollector(metrics))
//	// ... push values ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithReporter registers fn to receive every strict improvement of the best
// progression as it happens (blow-by-blow mode).
func WithReporter(fn func(Progression)) Option {
	return func(o *options) {
		o.reporter = fn
	}
}

// WithProgressInterval sets how often ingestion progress is logged.
// Zero or negative disables progress logging.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		o.progressInterval = d
	}
}
