package infrastructure

import (
	"context"
	"runtime"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// PipelineMetrics holds the instruments recorded by one roster run
type PipelineMetrics struct {
	rowsRead        metric.Int64Counter
	tuplesExtracted metric.Int64Counter
	courses         metric.Int64Counter
	runDuration     metric.Float64Histogram
	runErrors       metric.Int64Counter
	heapAlloc       metric.Int64Gauge
}

// NewPipelineMetrics creates the run instruments on meter
func NewPipelineMetrics(meter metric.Meter) (*PipelineMetrics, error) {
	rowsRead, err := meter.Int64Counter(
		"classmate_rows_read_total",
		metric.WithDescription("Roster rows read, header included"),
	)
	if err != nil {
		return nil, err
	}

	tuplesExtracted, err := meter.Int64Counter(
		"classmate_tuples_extracted_total",
		metric.WithDescription("Enrollment tuples extracted from the roster"),
	)
	if err != nil {
		return nil, err
	}

	courses, err := meter.Int64Counter(
		"classmate_courses_total",
		metric.WithDescription("Distinct course keys in the rendered roster"),
	)
	if err != nil {
		return nil, err
	}

	runDuration, err := meter.Float64Histogram(
		"classmate_run_duration",
		metric.WithDescription("Wall time of a roster run"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	runErrors, err := meter.Int64Counter(
		"classmate_run_errors_total",
		metric.WithDescription("Failed runs by error type"),
	)
	if err != nil {
		return nil, err
	}

	heapAlloc, err := meter.Int64Gauge(
		"classmate_heap_alloc_bytes",
		metric.WithDescription("Heap allocated by the Go runtime at the end of the run"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	return &PipelineMetrics{
		rowsRead:        rowsRead,
		tuplesExtracted: tuplesExtracted,
		courses:         courses,
		runDuration:     runDuration,
		runErrors:       runErrors,
		heapAlloc:       heapAlloc,
	}, nil
}

// RunStats summarizes one run for metrics and the summary log line
type RunStats struct {
	Rows     int
	Tuples   int
	Courses  int
	Duration time.Duration
}

// RecordRun records the counts of a successful run. A nil receiver is a no-op.
func (m *PipelineMetrics) RecordRun(ctx context.Context, stats RunStats) {
	if m == nil {
		return
	}
	m.rowsRead.Add(ctx, int64(stats.Rows))
	m.tuplesExtracted.Add(ctx, int64(stats.Tuples))
	m.courses.Add(ctx, int64(stats.Courses))
	m.runDuration.Record(ctx, stats.Duration.Seconds(), metric.WithAttributes(attribute.String("status", "success")))
	m.recordHeap(ctx)
}

// RecordFailure records a failed run tagged with the error type.
func (m *PipelineMetrics) RecordFailure(ctx context.Context, errType string, duration time.Duration) {
	if m == nil {
		return
	}
	m.runErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("type", errType)))
	m.runDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attribute.String("status", "failure")))
	m.recordHeap(ctx)
}

func (m *PipelineMetrics) recordHeap(ctx context.Context) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	m.heapAlloc.Record(ctx, int64(ms.HeapAlloc))
}
