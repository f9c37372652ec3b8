package dataprocessing

import (
	"classmate/pkg/contracts/domain"
)

// DefaultIdentityColumn is the header label of the person-name column.
const DefaultIdentityColumn = "이름"

// DefaultSkipColumns is the number of bookkeeping columns right after the
// identity column that never hold courses.
const DefaultSkipColumns = 1

// Aggregator groups tuples into a roster
type Aggregator interface {
	Aggregate(tuples []domain.EnrollmentTuple) *domain.Roster
}

// ExtractOptions configures extraction behavior
type ExtractOptions struct {
	// IdentityColumn is the header label that marks the person-name column
	IdentityColumn string

	// SkipColumns is how many cells after the identity column are not course slots
	SkipColumns int
}

// DefaultOptions returns default extraction options
func DefaultOptions() ExtractOptions {
	return ExtractOptions{
		IdentityColumn: DefaultIdentityColumn,
		SkipColumns:    DefaultSkipColumns,
	}
}

func (o ExtractOptions) withDefaults() ExtractOptions {
	if o.IdentityColumn == "" {
		o.IdentityColumn = DefaultIdentityColumn
	}
	if o.SkipColumns < 0 {
		o.SkipColumns = 0
	}
	return o
}
