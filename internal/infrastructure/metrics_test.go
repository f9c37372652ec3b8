package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetricsProviders(t *testing.T) (*OTelProviders, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "textfile", "classmate.prom")
	providers, err := InitializeOTel(&OTelConfig{
		ServiceName:    "classmate-test",
		ServiceVersion: "test",
		EnableMetrics:  true,
		MetricsFile:    path,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { providers.Shutdown(context.Background()) })
	return providers, path
}

func TestPipelineMetrics_RecordRun(t *testing.T) {
	providers, path := newMetricsProviders(t)
	metrics, err := NewPipelineMetrics(providers.Meter)
	require.NoError(t, err)

	metrics.RecordRun(context.Background(), RunStats{
		Rows:     4,
		Tuples:   5,
		Courses:  2,
		Duration: 150 * time.Millisecond,
	})
	require.NoError(t, providers.WriteMetrics())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "classmate_rows_read_total 4")
	assert.Contains(t, text, "classmate_tuples_extracted_total 5")
	assert.Contains(t, text, "classmate_courses_total 2")
	assert.Contains(t, text, "classmate_run_duration_seconds_count{status=\"success\"} 1")
	assert.Contains(t, text, "classmate_heap_alloc_bytes")
	assert.NotContains(t, text, "classmate_run_errors_total{")
	assert.NotContains(t, text, "target_info")
}

func TestPipelineMetrics_RecordFailure(t *testing.T) {
	providers, path := newMetricsProviders(t)
	metrics, err := NewPipelineMetrics(providers.Meter)
	require.NoError(t, err)

	metrics.RecordFailure(context.Background(), "MALFORMED_CELL", time.Millisecond)
	metrics.RecordFailure(context.Background(), "MALFORMED_CELL", time.Millisecond)
	require.NoError(t, providers.WriteMetrics())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "classmate_run_errors_total{type=\"MALFORMED_CELL\"} 2")
	assert.Contains(t, string(data), "classmate_run_duration_seconds_count{status=\"failure\"} 2")
}

func TestPipelineMetrics_NilReceiver(t *testing.T) {
	var metrics *PipelineMetrics
	metrics.RecordRun(context.Background(), RunStats{Rows: 1})
	metrics.RecordFailure(context.Background(), "X", 0)
}
