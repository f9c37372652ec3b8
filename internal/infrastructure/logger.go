package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"classmate/internal/config"
)

// Standard output belongs to the roster rendering. Logs go to stderr, the
// log file, both, or nowhere.
var (
	globalLogger     *slog.Logger
	globalLoggerOnce sync.Once

	logFileMu     sync.Mutex
	globalLogFile *os.File
)

// InitializeLogger builds the process logger on first call and installs it
// as the slog default. Later calls return the same logger.
func InitializeLogger(cfg config.LoggingConfig) (*slog.Logger, error) {
	var err error
	globalLoggerOnce.Do(func() {
		globalLogger, err = NewLogger(cfg)
		if err == nil {
			slog.SetDefault(globalLogger)
		}
	})
	return globalLogger, err
}

// GetLogger returns the process logger, or slog.Default before
// InitializeLogger has run.
func GetLogger() *slog.Logger {
	if globalLogger != nil {
		return globalLogger
	}
	return slog.Default()
}

// NewLogger builds a standalone logger. A log file it opens is tracked so
// CloseLogFile can release it.
func NewLogger(cfg config.LoggingConfig) (*slog.Logger, error) {
	w, err := logWriter(cfg)
	if err != nil {
		return nil, err
	}
	return slog.New(newHandler(w, cfg)), nil
}

func logWriter(cfg config.LoggingConfig) (io.Writer, error) {
	output := strings.ToLower(cfg.Output)
	switch output {
	case "none":
		return io.Discard, nil
	case "file", "both":
	default:
		return os.Stderr, nil
	}

	file, err := openLogFile(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logFileMu.Lock()
	globalLogFile = file
	logFileMu.Unlock()

	if output == "both" {
		return io.MultiWriter(os.Stderr, file), nil
	}
	return file, nil
}

func newHandler(w io.Writer, cfg config.LoggingConfig) slog.Handler {
	level := parseLogLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level, AddSource: level == slog.LevelDebug}

	if strings.EqualFold(cfg.Format, "text") {
		return &traceHandler{Handler: slog.NewTextHandler(w, opts)}
	}
	return &traceHandler{Handler: slog.NewJSONHandler(w, opts)}
}

// traceHandler stamps the run ID found in the record's context.
type traceHandler struct {
	slog.Handler
}

func (h *traceHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := GetTraceID(ctx); id != "" {
		r.AddAttrs(slog.String("trace_id", id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *traceHandler) WithGroup(name string) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithGroup(name)}
}

// parseLogLevel maps a config level name to slog. Unknown names mean warn.
func parseLogLevel(level string) slog.Level {
	levels := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	if l, ok := levels[strings.ToLower(level)]; ok {
		return l
	}
	return slog.LevelWarn
}

// CloseLogFile releases the file opened by NewLogger, if any.
func CloseLogFile() error {
	logFileMu.Lock()
	defer logFileMu.Unlock()

	if globalLogFile == nil {
		return nil
	}
	err := globalLogFile.Close()
	globalLogFile = nil
	return err
}

// ResetLoggerForTesting lets a test initialize the logger again.
func ResetLoggerForTesting() {
	CloseLogFile()
	globalLogger = nil
	globalLoggerOnce = sync.Once{}
}

// openLogFile appends to filePath, creating it and its directory.
func openLogFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return nil, fmt.Errorf("log file path is empty")
	}
	if err := config.EnsureParentDir(filePath); err != nil {
		return nil, err
	}
	return os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}

// openTruncated creates filePath afresh for per-run outputs.
func openTruncated(filePath string) (*os.File, error) {
	if err := config.EnsureParentDir(filePath); err != nil {
		return nil, err
	}
	return os.Create(filePath)
}
