package instrument

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/metric"
	"github.com/viant/metric/algebra"
	"github.com/viant/metric/prefer"
)

func newIntLift(t *testing.T) *prefer.Lift[int, int, int] {
	t.Helper()
	associate := func(x int) []int { return []int{x} }
	equal := func(a, b int) bool { return a == b }
	l, err := prefer.New[int, int, int](algebra.Numeric[int]{}, associate, equal, metric.Absolute[int]{}, 0, 5)
	require.NoError(t, err)
	return l
}

func TestObserveCountsAndPassesThrough(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())
	abs := metric.Absolute[int]{}
	wrapped := Observe[int, int](c, "absolute", abs)

	assert.Equal(t, abs.Distance(3, 10), wrapped.Distance(3, 10))
	assert.Equal(t, abs.Distance(-4, 4), wrapped.Distance(-4, 4))

	got := testutil.ToFloat64(c.DistanceCalls.WithLabelValues("absolute"))
	assert.Equal(t, 2.0, got)
}

func TestObserveComparerCountsAndPassesThrough(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())
	raw := newIntLift(t)
	wrapped := ObserveComparer[int, int](c, "lift", raw)

	assert.Equal(t, raw.CompareToPRF(1, 6), wrapped.CompareToPRF(1, 6))
	assert.Equal(t, 25, wrapped.CompareToPRF(1, 6))
	assert.Equal(t, 0, wrapped.CompareToPRF(0, 5))

	calls := testutil.ToFloat64(c.CompareCalls.WithLabelValues("lift"))
	assert.Equal(t, 3.0, calls)

	// One labeled duration series must have appeared.
	assert.Equal(t, 1, testutil.CollectAndCount(c.CompareDuration))
}

func TestObserveNilCollectorPassesThrough(t *testing.T) {
	abs := metric.Absolute[int]{}
	assert.Equal(t, 7, Observe[int, int](nil, "absolute", abs).Distance(0, 7))

	raw := newIntLift(t)
	assert.Equal(t, 25, ObserveComparer[int, int](nil, "lift", raw).CompareToPRF(1, 6))
}

func TestNewCollectorRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.DistanceCalls.WithLabelValues("absolute").Inc()
	c.CompareCalls.WithLabelValues("lift").Inc()
	c.CompareDuration.WithLabelValues("lift").Observe(0.01)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 3)
}

func TestNewCollectorNilRegisterer(t *testing.T) {
	c := NewCollector(nil)
	require.NotNil(t, c)
	c.DistanceCalls.WithLabelValues("absolute").Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(c.DistanceCalls.WithLabelValues("absolute")))
}
