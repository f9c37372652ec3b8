// Package files provides the file system side of a classmate run.
//
// This package contains three components:
//
// Discovery: lists the CSV exports in a directory, used to suggest valid
// roster names when the requested one is missing.
//
// TableReader: parses the roster export dialect, comma separated with '|' as
// the quote character.
//
// Manager: locates <base>.csv in the input directory and reads it into a
// table. A missing roster is reported before anything is parsed.
//
// Example usage:
//
//	manager := files.NewManager(paths, logger)
//
//	path, err := manager.LocateRoster("students")
//	if err != nil {
//	    return err // SOURCE_NOT_FOUND, lists available bases
//	}
//	table, err := manager.ReadRoster(path)
package files
