package dataprocessing

import (
	"classmate/pkg/contracts/domain"
)

// CourseAggregator buckets enrollment tuples by normalized course key
type CourseAggregator struct{}

// NewCourseAggregator creates a new course aggregator
func NewCourseAggregator() *CourseAggregator {
	return &CourseAggregator{}
}

// Aggregate files every tuple under its course key, in input order.
// Single-member courses still get a record.
func (a *CourseAggregator) Aggregate(tuples []domain.EnrollmentTuple) *domain.Roster {
	roster := domain.NewRoster()
	for _, t := range tuples {
		roster.Add(NormalizeCourseKey(t.CourseTitle), t)
	}
	return roster
}

// Aggregate is shorthand for NewCourseAggregator().Aggregate(tuples).
func Aggregate(tuples []domain.EnrollmentTuple) *domain.Roster {
	return NewCourseAggregator().Aggregate(tuples)
}

// AggregationStatistics describes one aggregation run
type AggregationStatistics struct {
	TuplesProcessed int
	CoursesFound    int
	SharedCourses   int // courses with more than one member
	EmptyKeys       int // tuples whose title had no Hangul at all
}

// AggregateWithStats performs aggregation and returns statistics
func (a *CourseAggregator) AggregateWithStats(tuples []domain.EnrollmentTuple) (*domain.Roster, AggregationStatistics) {
	roster := a.Aggregate(tuples)

	stats := AggregationStatistics{
		TuplesProcessed: roster.TupleCount(),
		CoursesFound:    roster.Len(),
	}
	for _, entry := range roster.Entries() {
		if entry.Record.Len() > 1 {
			stats.SharedCourses++
		}
		if entry.Key == "" {
			stats.EmptyKeys = entry.Record.Len()
		}
	}

	return roster, stats
}
