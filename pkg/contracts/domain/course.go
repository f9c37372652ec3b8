package domain

import "sort"

// CourseKey groups every section of one course. It is derived from a course
// title by the normalizer in internal/dataprocessing and is never stored apart
// from the tuples it was computed from, except as a Roster key.
type CourseKey string

// CourseRecord holds everyone enrolled in any section of one course.
//
// Members stay in arrival order; SortedMembers computes the display order on
// demand so repeated renders always agree.
type CourseRecord struct {
	Key     CourseKey         `json:"course_key"`
	Members []EnrollmentTuple `json:"members"`
}

// NewCourseRecord creates a record seeded with its first member.
func NewCourseRecord(key CourseKey, first EnrollmentTuple) *CourseRecord {
	return &CourseRecord{
		Key:     key,
		Members: []EnrollmentTuple{first},
	}
}

// Append adds a member to the record.
func (r *CourseRecord) Append(t EnrollmentTuple) {
	r.Members = append(r.Members, t)
}

// Len returns the number of members.
func (r *CourseRecord) Len() int {
	return len(r.Members)
}

// SortedMembers returns a copy of the members ordered by course title.
// Members with equal titles keep their arrival order.
func (r *CourseRecord) SortedMembers() []EnrollmentTuple {
	sorted := make([]EnrollmentTuple, len(r.Members))
	copy(sorted, r.Members)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CourseTitle < sorted[j].CourseTitle
	})
	return sorted
}
