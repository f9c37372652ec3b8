// Package config provides centralized configuration management for classmate.
// It handles loading configuration from multiple sources, validation, and
// resolves every file path a run touches.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (classmate.yaml, configs/classmate.yaml or $CLASSMATE_CONFIG)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern CLASSMATE_<SECTION>_<FIELD>:
//
//	CLASSMATE_ROSTER_INPUT_DIR=exports
//	CLASSMATE_ROSTER_SKIP_COLUMNS=1
//	CLASSMATE_OUTPUT_WORKBOOK=true
//	CLASSMATE_LOGGING_LEVEL=debug
//	CLASSMATE_TELEMETRY_METRICS=true
//
// The defaults reproduce the plain behavior: read <base>.csv from the working
// directory, print the roster, write 겹강목록.txt next to it.
//
// # Path Management
//
// Paths resolves relative entries against the working directory:
//
//	paths, err := config.GetPaths(cfg)
//	rosterPath := paths.GetRosterPath("students")
//	reportPath := paths.GetTextReportPath()
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    cfg = config.Default()
//	}
package config
