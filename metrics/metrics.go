// Package metrics records facade call outcomes as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/api"
	"github.com/jmgilman/go/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "store_dashboard"
	subsystem = "api"
)

// Collector implements api.Observer. Calls are counted by verb and outcome,
// where the outcome is "success" or the ErrorKind of the failure.
type Collector struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// Compile-time check.
var _ api.Observer = (*Collector)(nil)

// NewCollector creates a collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		return nil, errors.New(errors.CodeInvalidInput, "registerer cannot be nil")
	}

	c := &Collector{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "calls_total",
				Help:      "Total number of API facade calls.",
			},
			[]string{"verb", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "call_duration_seconds",
				Help:      "Duration of API facade calls.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
			},
			[]string{"verb"},
		),
	}

	for _, collector := range []prometheus.Collector{c.calls, c.duration} {
		if err := reg.Register(collector); err != nil {
			return nil, errors.Wrap(err, errors.CodeAlreadyExists, "failed to register metrics")
		}
	}

	return c, nil
}

// ObserveCall implements api.Observer.
func (c *Collector) ObserveCall(verb api.Verb, outcome string, elapsed time.Duration) {
	c.calls.WithLabelValues(string(verb), outcome).Inc()
	c.duration.WithLabelValues(string(verb)).Observe(elapsed.Seconds())
}
