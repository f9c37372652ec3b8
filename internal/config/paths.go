package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains all the file paths of one run.
// Relative config entries are resolved against the working directory, which
// is where the roster is looked up and the report is written by default.
type Paths struct {
	WorkingDir string
	InputDir   string
	OutputDir  string

	LogFile     string
	TraceFile   string
	MetricsFile string

	outputBase string
}

// GetPaths resolves the paths for cfg against the current working directory.
func GetPaths(cfg *Config) (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return ResolvePaths(cfg, wd), nil
}

// ResolvePaths resolves the paths for cfg against base.
func ResolvePaths(cfg *Config, base string) *Paths {
	resolve := func(p string) string {
		if p == "" {
			return base
		}
		if filepath.IsAbs(p) {
			return filepath.Clean(p)
		}
		return filepath.Join(base, p)
	}

	return &Paths{
		WorkingDir:  base,
		InputDir:    resolve(cfg.Roster.InputDir),
		OutputDir:   resolve(cfg.Output.Dir),
		LogFile:     resolve(cfg.Logging.FilePath),
		TraceFile:   resolve(cfg.Telemetry.TraceFile),
		MetricsFile: resolve(cfg.Telemetry.MetricsFile),
		outputBase:  cfg.Output.BaseName,
	}
}

// GetRosterPath returns the path of the roster export named base.
func (p *Paths) GetRosterPath(base string) string {
	return filepath.Join(p.InputDir, base+RosterExtension)
}

// GetTextReportPath returns the path of the plain text report
func (p *Paths) GetTextReportPath() string {
	return filepath.Join(p.OutputDir, p.outputBase+TextExtension)
}

// GetWorkbookPath returns the path of the xlsx export
func (p *Paths) GetWorkbookPath() string {
	return filepath.Join(p.OutputDir, p.outputBase+WorkbookExtension)
}

// GetCSVReportPath returns the path of the flat CSV export
func (p *Paths) GetCSVReportPath() string {
	return filepath.Join(p.OutputDir, p.outputBase+CSVExtension)
}

// EnsureParentDir creates the directory holding file if it doesn't exist.
func EnsureParentDir(file string) error {
	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// LogPathResolution logs the resolved paths at debug level
func (p *Paths) LogPathResolution(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Debug("Path resolution summary",
		slog.Group("directories",
			slog.String("working", p.WorkingDir),
			slog.String("input", p.InputDir),
			slog.String("output", p.OutputDir),
		),
		slog.Group("files",
			slog.String("text_report", p.GetTextReportPath()),
			slog.String("log", p.LogFile),
			slog.String("trace", p.TraceFile),
			slog.String("metrics", p.MetricsFile),
		))
}
