// Package dataprocessing turns a roster table into course groupings.
//
// # Architecture
//
// The package has two components:
//
// 1. Parser: Extract locates the identity column and converts every course
// cell of every row into EnrollmentTuples
// 2. Processor: CourseAggregator normalizes each tuple's course title to a
// CourseKey and files the tuple in a Roster
//
// # Usage
//
//	tuples, err := dataprocessing.Extract(table, dataprocessing.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	roster := dataprocessing.Aggregate(tuples)
//	for _, entry := range roster.Entries() {
//	    ...
//	}
//
// # Data Flow
//
//	CSV table → Extract → []EnrollmentTuple → Aggregate → Roster → exporters
//
// # Error Handling
//
// Extract stops at the first bad row. Errors are *errors.AppError values that
// match ErrMissingIdentityColumn, ErrRowTooShort or ErrMalformedCell and carry
// the 1-based CSV line (and column for cells). Aggregate cannot fail.
//
// Neither function performs I/O.
package dataprocessing
