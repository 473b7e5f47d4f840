package metrics_config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounterVecIsRegistered(t *testing.T) {
	counters := NewCounterVec("test_requests_total", "Requests seen by the test")
	require.NotNil(t, counters)

	counters.WithLabelValues("ok").Add(2)

	gauge := NewGauge("test_head", "Head seen by the test")
	gauge.Set(7)

	file := filepath.Join(t.TempDir(), "cita.prom")
	require.NoError(t, WriteTextfile(file))

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(content), `cita_jsonrpc_test_requests_total{label="ok"} 2`)
	require.Contains(t, string(content), "cita_jsonrpc_test_head 7")
}

func TestDisabledMetricsAreNil(t *testing.T) {
	DisableMetrics()
	defer EnableMetrics()

	require.False(t, MetricsEnabled())
	require.Nil(t, NewCounterVec("test_disabled_total", "Never registered"))
	require.Nil(t, NewGaugeVec("test_disabled_gauge", "Never registered"))
	require.NoError(t, WriteTextfile(filepath.Join(t.TempDir(), "none.prom")))
}
