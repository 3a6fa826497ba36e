package instrument

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/metric"
	"github.com/viant/metric/prefer"
)

// Collector bundles the Prometheus instruments shared by the decorators in
// this package. The vectors are labeled by the caller-chosen name passed to
// Observe and ObserveComparer.
type Collector struct {
	DistanceCalls   *prometheus.CounterVec
	CompareCalls    *prometheus.CounterVec
	CompareDuration *prometheus.HistogramVec
}

// NewCollector builds the collector and registers its instruments with reg
// when reg is non-nil.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		DistanceCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "metric_distance_calls_total",
			Help: "Total number of Distance evaluations per metric",
		}, []string{"metric"}),
		CompareCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "preference_compare_calls_total",
			Help: "Total number of CompareToPRF evaluations per comparer",
		}, []string{"comparer"}),
		CompareDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "preference_compare_duration_seconds",
			Help:    "Duration of CompareToPRF evaluations",
			Buckets: prometheus.DefBuckets,
		}, []string{"comparer"}),
	}

	if reg != nil {
		reg.MustRegister(
			c.DistanceCalls,
			c.CompareCalls,
			c.CompareDuration,
		)
	}

	return c
}

// Observe wraps m so every Distance call increments the collector's
// distance counter under name. A nil collector returns m undecorated.
func Observe[T, R any](c *Collector, name string, m metric.Metric[T, R]) metric.Metric[T, R] {
	if c == nil {
		return m
	}
	calls := c.DistanceCalls.WithLabelValues(name)
	return metric.Func[T, R](func(a, b T) R {
		calls.Inc()
		return m.Distance(a, b)
	})
}

// ObserveComparer wraps cmp so every CompareToPRF call increments the
// compare counter and records its wall-clock duration under name. A nil
// collector returns cmp undecorated.
func ObserveComparer[P, R any](c *Collector, name string, cmp prefer.Comparer[P, R]) prefer.Comparer[P, R] {
	if c == nil {
		return cmp
	}
	calls := c.CompareCalls.WithLabelValues(name)
	duration := c.CompareDuration.WithLabelValues(name)
	return comparerFunc[P, R](func(a, b P) R {
		start := time.Now()
		defer func() {
			duration.Observe(time.Since(start).Seconds())
			calls.Inc()
		}()
		return cmp.CompareToPRF(a, b)
	})
}

type comparerFunc[P, R any] func(c, d P) R

func (f comparerFunc[P, R]) CompareToPRF(c, d P) R { return f(c, d) }
