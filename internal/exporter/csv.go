package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "classmate/internal/errors"
	"classmate/pkg/contracts/domain"
)

// utf8BOM lets spreadsheet programs detect UTF-8 Hangul.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter writes plain comma separated files.
type CSVWriter struct {
	logger *slog.Logger
}

func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteOptions selects what WriteCSV emits. Headers and BOMPrefix only
// apply when the file is started fresh, not when Append is set.
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	Append    bool
	BOMPrefix bool
}

func (o WriteOptions) openFlags() int {
	if o.Append {
		return os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	return os.O_CREATE | os.O_WRONLY | os.O_TRUNC
}

// WriteCSV creates the parent directory of filePath if needed and writes
// the records described by options.
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", filePath, err)
	}

	file, err := os.OpenFile(filePath, options.openFlags(), 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", filePath, err)
	}
	defer file.Close()

	if err := writeRecords(file, options); err != nil {
		return fmt.Errorf("write %s: %w", filePath, err)
	}

	w.logger.Debug("CSV file written",
		slog.String("file_path", filePath),
		slog.Int("record_count", len(options.Records)),
		slog.Bool("append", options.Append))
	return file.Close()
}

func writeRecords(out io.Writer, options WriteOptions) error {
	fresh := !options.Append
	if fresh && options.BOMPrefix {
		if _, err := out.Write(utf8BOM); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(out)
	if fresh && len(options.Headers) > 0 {
		if err := cw.Write(options.Headers); err != nil {
			return err
		}
	}
	if err := cw.WriteAll(options.Records); err != nil {
		return err
	}
	return cw.Error()
}

// RosterCSVExporter writes the roster as one CSV row per member
type RosterCSVExporter struct {
	path   string
	writer *CSVWriter
	logger *slog.Logger
}

// NewRosterCSVExporter creates a flat CSV exporter for path
func NewRosterCSVExporter(path string, logger *slog.Logger) *RosterCSVExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &RosterCSVExporter{path: path, writer: NewCSVWriter(logger), logger: logger}
}

// Name implements Exporter
func (e *RosterCSVExporter) Name() string { return "csv" }

// Export implements Exporter
func (e *RosterCSVExporter) Export(roster *domain.Roster) (string, error) {
	rows := rosterRows(roster)
	err := e.writer.WriteCSV(e.path, WriteOptions{
		Headers:   RosterHeaders,
		Records:   rows,
		BOMPrefix: true,
	})
	if err != nil {
		return "", apperrors.NewStorageError("failed to write roster csv", err).
			WithContext("path", e.path)
	}

	e.logger.Info("CSV report written",
		slog.String("path", e.path),
		slog.Int("rows", len(rows)))
	return e.path, nil
}
