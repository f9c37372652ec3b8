// Package app wires configuration, logging, telemetry and the roster pipeline
// into one Application and runs it.
//
// A run has five traced steps:
//
//	locate     find <input dir>/<base>.csv
//	read       parse the pipe-quoted table
//	extract    turn rows into (person, course title, section) tuples
//	aggregate  group tuples by normalized course key
//	render     console, text report and the optional workbook and CSV exports
//
// The first failing step aborts the run. Render is the only step that
// writes files, so a failed run leaves previous reports untouched.
//
// The package never calls os.Exit; the command decides the exit code.
package app
