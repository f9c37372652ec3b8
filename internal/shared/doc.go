// Package shared holds helpers used by more than one classmate package.
//
// # Test Utilities
//
// The testutil subpackage provides:
//
//	- LogRecorder, a slog.Handler that records every log call so tests
//	  can assert on messages and attributes
//	- roster fixtures: SampleRoster and WriteRosterCSV, which writes rows in
//	  the pipe-quoted export dialect
//	- Chdir, for tests of code that resolves paths against the working directory
//
// Example usage:
//
//	func TestRun(t *testing.T) {
//	    dir := t.TempDir()
//	    testutil.WriteRosterCSV(t, dir, "students", testutil.SampleRoster)
//	    logger, logs := testutil.NewTestLogger(t)
//	    ...
//	    testutil.AssertNoErrors(t, logs)
//	}
package shared
