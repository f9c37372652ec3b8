package domain

import "sort"

// Roster maps each course key to the record of everyone taking that course.
// Records are created on first sight of a key and only ever appended to.
type Roster struct {
	records map[CourseKey]*CourseRecord
	tuples  int
}

// RosterEntry is one (key, record) pair of the sorted roster view.
type RosterEntry struct {
	Key    CourseKey
	Record *CourseRecord
}

// NewRoster returns an empty roster.
func NewRoster() *Roster {
	return &Roster{records: make(map[CourseKey]*CourseRecord)}
}

// Add files t under key, creating the record if this is the first tuple seen
// for the key.
func (r *Roster) Add(key CourseKey, t EnrollmentTuple) {
	r.tuples++
	if rec, ok := r.records[key]; ok {
		rec.Append(t)
		return
	}
	r.records[key] = NewCourseRecord(key, t)
}

// Get returns the record for key.
func (r *Roster) Get(key CourseKey) (*CourseRecord, bool) {
	rec, ok := r.records[key]
	return rec, ok
}

// Len returns the number of distinct courses.
func (r *Roster) Len() int {
	return len(r.records)
}

// TupleCount returns the number of tuples added across all records.
func (r *Roster) TupleCount() int {
	return r.tuples
}

// Entries returns the roster ordered by course key.
func (r *Roster) Entries() []RosterEntry {
	entries := make([]RosterEntry, 0, len(r.records))
	for k, rec := range r.records {
		entries = append(entries, RosterEntry{Key: k, Record: rec})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}
