package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveLoad("success", 20*time.Millisecond)
	m.IncPollCycle("completed")
	m.IncPollCycle("completed")
	m.SetTracked(2, 1)
	m.SetShown(4)
	m.IncDeletion("single")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Loads.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.PollCycles.WithLabelValues("completed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DeferredTracked.WithLabelValues("pending")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DeferredTracked.WithLabelValues("failed")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.DocumentsShown))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Deletions.WithLabelValues("single")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveLoad("failure", time.Second)
		m.IncPollCycle("query_failed")
		m.SetTracked(0, 0)
		m.SetShown(0)
		m.IncDeletion("failed")
	})
}
