package exporter

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	apperrors "classmate/internal/errors"
	"classmate/pkg/contracts/domain"
)

// Exporter writes a finished roster somewhere and reports where
type Exporter interface {
	Name() string
	Export(roster *domain.Roster) (string, error)
}

// ConsoleExporter prints the roster blocks to a writer, normally stdout
type ConsoleExporter struct {
	out io.Writer
}

// NewConsoleExporter creates a console exporter writing to out
func NewConsoleExporter(out io.Writer) *ConsoleExporter {
	return &ConsoleExporter{out: out}
}

// Name implements Exporter
func (c *ConsoleExporter) Name() string { return "console" }

// Export implements Exporter
func (c *ConsoleExporter) Export(roster *domain.Roster) (string, error) {
	if err := writeBlocks(c.out, roster); err != nil {
		return "", apperrors.NewStorageError("failed to print roster", err)
	}
	return "stdout", nil
}

// TextExporter writes the banner and roster blocks to a text file
type TextExporter struct {
	path   string
	banner string
	logger *slog.Logger
}

// NewTextExporter creates a text exporter for path. The file is replaced on
// every export.
func NewTextExporter(path, banner string, logger *slog.Logger) *TextExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextExporter{path: path, banner: banner, logger: logger}
}

// Name implements Exporter
func (e *TextExporter) Name() string { return "text" }

// Render returns the exact file contents for roster.
func (e *TextExporter) Render(roster *domain.Roster) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n\n", e.banner)
	if err := writeBlocks(&buf, roster); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Export implements Exporter. The report is rendered in memory first so a
// failure never leaves a partial file behind.
func (e *TextExporter) Export(roster *domain.Roster) (string, error) {
	data, err := e.Render(roster)
	if err != nil {
		return "", apperrors.NewStorageError("failed to render roster", err)
	}

	if err := os.WriteFile(e.path, data, 0644); err != nil {
		e.logger.Error("Failed to write text report",
			slog.String("path", e.path),
			slog.String("error", err.Error()))
		return "", apperrors.NewStorageError("failed to write text report", err).
			WithContext("path", e.path)
	}

	e.logger.Info("Text report written",
		slog.String("path", e.path),
		slog.Int("courses", roster.Len()),
		slog.Int("size_bytes", len(data)))
	return e.path, nil
}
