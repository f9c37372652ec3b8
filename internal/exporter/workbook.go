package exporter

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	apperrors "classmate/internal/errors"
	"classmate/pkg/contracts/domain"
)

// WorkbookExporter writes the roster to a single-sheet xlsx file
type WorkbookExporter struct {
	path   string
	sheet  string
	logger *slog.Logger
}

// NewWorkbookExporter creates a workbook exporter for path
func NewWorkbookExporter(path, sheet string, logger *slog.Logger) *WorkbookExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookExporter{path: path, sheet: sheet, logger: logger}
}

// Name implements Exporter
func (e *WorkbookExporter) Name() string { return "workbook" }

// Export implements Exporter
func (e *WorkbookExporter) Export(roster *domain.Roster) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := e.fill(f, roster); err != nil {
		return "", apperrors.NewStorageError("failed to build workbook", err).
			WithContext("path", e.path)
	}

	if err := f.SaveAs(e.path); err != nil {
		e.logger.Error("Failed to save workbook",
			slog.String("path", e.path),
			slog.String("error", err.Error()))
		return "", apperrors.NewStorageError("failed to save workbook", err).
			WithContext("path", e.path)
	}

	e.logger.Info("Workbook written",
		slog.String("path", e.path),
		slog.String("sheet", e.sheet),
		slog.Int("rows", roster.TupleCount()))
	return e.path, nil
}

func (e *WorkbookExporter) fill(f *excelize.File, roster *domain.Roster) error {
	if err := f.SetSheetName(f.GetSheetName(0), e.sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(RosterHeaders))
	for i, h := range RosterHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(e.sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetCellStyle(e.sheet, "A1", "D1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, row := range rosterRows(roster) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{row[0], row[1], row[2], row[3]}
		if err := f.SetSheetRow(e.sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(e.sheet, "A", "C", 24); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	return f.SetPanes(e.sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
