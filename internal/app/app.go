package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"classmate/internal/config"
	"classmate/internal/dataprocessing"
	apperrors "classmate/internal/errors"
	"classmate/internal/exporter"
	"classmate/internal/files"
	"classmate/internal/infrastructure"
	"classmate/internal/validation"
	"classmate/pkg/contracts/domain"
)

// Application holds everything one roster run needs
type Application struct {
	Config        *config.Config
	Paths         *config.Paths
	Logger        *slog.Logger
	OTelProviders *infrastructure.OTelProviders
	Metrics       *infrastructure.PipelineMetrics
	Files         *files.Manager
	Validator     *validation.FileValidator

	// Stdout receives the console rendering of the roster
	Stdout io.Writer

	tracer trace.Tracer
}

// Result describes a successful run
type Result struct {
	infrastructure.RunStats
	SharedCourses int
	Outputs       []string
}

// NewApplication loads the configuration from the environment, sets up
// logging and telemetry, and returns an application writing to stdout.
// An invalid configuration is reported and replaced by the defaults.
func NewApplication(stdout io.Writer) (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	paths, err := config.GetPaths(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get paths: %w", err)
	}

	logCfg := cfg.Logging
	logCfg.FilePath = paths.LogFile
	logger, err := infrastructure.InitializeLogger(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Debug("Application starting",
		slog.String("name", config.AppName),
		slog.String("version", config.AppVersion))
	paths.LogPathResolution(logger)

	return New(cfg, paths, logger, stdout)
}

// New wires an application from an already resolved configuration.
func New(cfg *config.Config, paths *config.Paths, logger *slog.Logger, stdout io.Writer) (*Application, error) {
	if logger == nil {
		logger = infrastructure.GetLogger()
	}
	if stdout == nil {
		stdout = io.Discard
	}

	providers, err := infrastructure.InitializeOTel(infrastructure.NewOTelConfig(cfg, paths), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	metrics, err := infrastructure.NewPipelineMetrics(providers.Meter)
	if err != nil {
		providers.Shutdown(context.Background())
		return nil, fmt.Errorf("failed to create pipeline metrics: %w", err)
	}

	return &Application{
		Config:        cfg,
		Paths:         paths,
		Logger:        logger,
		OTelProviders: providers,
		Metrics:       metrics,
		Files:         files.NewManager(paths, infrastructure.WithComponent(logger, "files")),
		Validator:     validation.NewFileValidator(infrastructure.WithComponent(logger, "validation")),
		Stdout:        stdout,
		tracer:        providers.Tracer,
	}, nil
}

// Run reads the roster named base, groups it by course and writes every
// enabled report. Nothing is written unless extraction and aggregation both
// succeed.
func (a *Application) Run(ctx context.Context, base string) (*Result, error) {
	start := time.Now()
	ctx = infrastructure.EnsureTraceID(ctx)
	logger := infrastructure.LoggerWithContext(ctx, a.Logger)

	ctx, span := a.tracer.Start(ctx, "classmate.run",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("roster.base", base),
			attribute.String("run.trace_id", infrastructure.GetTraceID(ctx)),
		),
	)
	defer span.End()
	if spanID := infrastructure.TraceIDFromContext(ctx); spanID != "" {
		logger = logger.With(slog.String("otel_trace_id", spanID))
	}

	result, err := a.run(ctx, logger, base)
	elapsed := time.Since(start)
	if err != nil {
		infrastructure.RecordError(ctx, err)
		a.Metrics.RecordFailure(ctx, string(apperrors.TypeOf(err)), elapsed)
		infrastructure.WithError(logger, err).Error("Run failed",
			slog.String("base", base),
			slog.String("type", string(apperrors.TypeOf(err))))
		return nil, err
	}

	result.Duration = elapsed
	a.Metrics.RecordRun(ctx, result.RunStats)

	logger.Info("Run complete",
		slog.String("base", base),
		slog.Int("rows", result.Rows),
		slog.Int("tuples", result.Tuples),
		slog.Int("courses", result.Courses),
		slog.Int("shared_courses", result.SharedCourses),
		slog.Int64("duration_ms", elapsed.Milliseconds()),
		slog.Any("outputs", result.Outputs))

	return result, nil
}

func (a *Application) run(ctx context.Context, logger *slog.Logger, base string) (*Result, error) {
	var (
		path   string
		table  [][]string
		tuples []domain.EnrollmentTuple
		roster *domain.Roster
		stats  dataprocessing.AggregationStatistics
		err    error
	)

	if err = a.step(ctx, "locate", func(ctx context.Context) error {
		path, err = a.Files.LocateRoster(base)
		return err
	}); err != nil {
		return nil, err
	}

	if err = a.step(ctx, "read", func(ctx context.Context) error {
		table, err = a.Files.ReadRoster(path)
		infrastructure.SetSpanAttributes(ctx, attribute.Int("roster.rows", len(table)))
		return err
	}); err != nil {
		return nil, err
	}

	if err = a.step(ctx, "extract", func(ctx context.Context) error {
		tuples, err = dataprocessing.Extract(table, a.extractOptions())
		infrastructure.SetSpanAttributes(ctx, attribute.Int("roster.tuples", len(tuples)))
		return err
	}); err != nil {
		return nil, err
	}

	if err = a.step(ctx, "aggregate", func(ctx context.Context) error {
		roster, stats = dataprocessing.NewCourseAggregator().AggregateWithStats(tuples)
		infrastructure.SetSpanAttributes(ctx, attribute.Int("roster.courses", stats.CoursesFound))
		return nil
	}); err != nil {
		return nil, err
	}

	if stats.EmptyKeys > 0 {
		logger.Warn("Course titles without Hangul share an empty course key",
			slog.Int("tuples", stats.EmptyKeys))
	}

	var outputs []string
	if err = a.step(ctx, "render", func(ctx context.Context) error {
		outputs, err = a.render(roster)
		return err
	}); err != nil {
		return nil, err
	}

	return &Result{
		RunStats: infrastructure.RunStats{
			Rows:    len(table),
			Tuples:  len(tuples),
			Courses: roster.Len(),
		},
		SharedCourses: stats.SharedCourses,
		Outputs:       outputs,
	}, nil
}

// step runs fn inside a child span named name.
func (a *Application) step(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	ctx, span := a.tracer.Start(ctx, name)
	defer span.End()

	if err := fn(ctx); err != nil {
		infrastructure.RecordError(ctx, err)
		return err
	}
	return nil
}

func (a *Application) extractOptions() dataprocessing.ExtractOptions {
	return dataprocessing.ExtractOptions{
		IdentityColumn: a.Config.Roster.IdentityColumn,
		SkipColumns:    a.Config.Roster.SkipColumns,
	}
}

// render checks the output directory once, then hands the roster to every
// enabled exporter in order.
func (a *Application) render(roster *domain.Roster) ([]string, error) {
	if err := a.Validator.ValidateOutputDirectory(a.Paths.OutputDir); err != nil {
		return nil, err
	}

	outputs := make([]string, 0, 4)
	for _, e := range a.exporters() {
		where, err := e.Export(roster)
		if err != nil {
			return outputs, fmt.Errorf("%s export failed: %w", e.Name(), err)
		}
		outputs = append(outputs, where)
	}
	return outputs, nil
}

func (a *Application) exporters() []exporter.Exporter {
	out := a.Config.Output
	logger := infrastructure.WithComponent(a.Logger, "exporter")
	var exps []exporter.Exporter

	if out.Console {
		exps = append(exps, exporter.NewConsoleExporter(a.Stdout))
	}
	exps = append(exps, exporter.NewTextExporter(a.Paths.GetTextReportPath(), out.Banner, logger))
	if out.Workbook {
		exps = append(exps, exporter.NewWorkbookExporter(a.Paths.GetWorkbookPath(), config.WorkbookSheetName, logger))
	}
	if out.CSV {
		exps = append(exps, exporter.NewRosterCSVExporter(a.Paths.GetCSVReportPath(), logger))
	}
	return exps
}

// Shutdown flushes telemetry and closes the log file.
func (a *Application) Shutdown(ctx context.Context) error {
	var err error
	if a.OTelProviders != nil {
		err = a.OTelProviders.Shutdown(ctx)
	}
	if closeErr := infrastructure.CloseLogFile(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
