// Package exporter renders a finished roster.
//
// Every exporter implements Exporter and is only invoked after aggregation has
// succeeded, so a failed run never touches an output file.
//
// ConsoleExporter: prints one block per course to standard output.
//
// TextExporter: writes the banner, a blank line and the same blocks to the
// report file, replacing any previous report.
//
// WorkbookExporter and RosterCSVExporter: optional tabular exports with one
// row per member and the columns 과목, 이름, 강의명, 분반.
//
// Example usage:
//
//	exporters := []exporter.Exporter{
//	    exporter.NewConsoleExporter(os.Stdout),
//	    exporter.NewTextExporter(paths.GetTextReportPath(), cfg.Output.Banner, logger),
//	}
//	for _, e := range exporters {
//	    if _, err := e.Export(roster); err != nil {
//	        return err
//	    }
//	}
package exporter
