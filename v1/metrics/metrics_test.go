package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ConnectorCounters(t *testing.T) {
	m := NewMetrics(Config{Namespace: "test", ServiceName: "unit"})

	m.RecordScan("ok")
	m.RecordScan("ok")
	m.RecordScan("remote_error")
	m.IncrementErrors("remote")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.scansTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.scansTotal.WithLabelValues("remote_error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errorsTotal.WithLabelValues("remote")))
}

func TestMetrics_RemoteDuration(t *testing.T) {
	m := NewMetrics(Config{Namespace: "test", ServiceName: "unit"})

	m.ObserveRemoteRequest(time.Now().Add(-10*time.Millisecond), "get_collection")

	count, err := testutil.GatherAndCount(m.Registry, "test_remote_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_CreateCounterUsesNamespace(t *testing.T) {
	m := NewMetrics(Config{Namespace: "test", ServiceName: "unit"})

	c := m.CreateCounter("custom_total", "custom", []string{"label"})
	c.WithLabelValues("x").Inc()

	count, err := testutil.GatherAndCount(m.Registry, "test_custom_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewMetrics_DefaultAddress(t *testing.T) {
	m := NewMetrics(Config{})
	assert.Equal(t, DefaultMetricsAddress, m.Server.Addr)
}
