package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnrollmentTuple(t *testing.T) {
	tests := []struct {
		name        string
		rawSection  string
		wantSection string
	}{
		{name: "closed parenthesis", rawSection: "001)", wantSection: "001"},
		{name: "korean suffix", rawSection: "02분반)", wantSection: "02"},
		{name: "no digits", rawSection: ")", wantSection: ""},
		{name: "nested parenthesis", rawSection: "3)(실습4)", wantSection: "34"},
		{name: "fullwidth digits dropped", rawSection: "１2)", wantSection: "2"},
		{name: "empty", rawSection: "", wantSection: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuple := NewEnrollmentTuple("Alice", "미적분학1", tt.rawSection)
			assert.Equal(t, "Alice", tuple.PersonName)
			assert.Equal(t, "미적분학1", tuple.CourseTitle)
			assert.Equal(t, tt.wantSection, tuple.SectionNumber)
		})
	}
}

func TestEnrollmentTupleString(t *testing.T) {
	tuple := EnrollmentTuple{PersonName: "Alice", CourseTitle: "미적분학1", SectionNumber: "001"}
	assert.Equal(t, "이름: Alice, 강의명: 미적분학1, 분반: 001", tuple.String())
}

func TestCourseRecordSortedMembers(t *testing.T) {
	rec := NewCourseRecord("초급프랑스어", EnrollmentTuple{PersonName: "Bob", CourseTitle: "초급프랑스어2", SectionNumber: "007"})
	rec.Append(EnrollmentTuple{PersonName: "Alice", CourseTitle: "초급프랑스어1", SectionNumber: "003"})
	rec.Append(EnrollmentTuple{PersonName: "Carol", CourseTitle: "초급프랑스어2", SectionNumber: "001"})

	sorted := rec.SortedMembers()
	require.Len(t, sorted, 3)
	assert.Equal(t, "Alice", sorted[0].PersonName)
	// equal titles keep arrival order
	assert.Equal(t, "Bob", sorted[1].PersonName)
	assert.Equal(t, "Carol", sorted[2].PersonName)

	// stored order is untouched
	assert.Equal(t, "Bob", rec.Members[0].PersonName)
	assert.Equal(t, sorted, rec.SortedMembers())
}

func TestRosterAdd(t *testing.T) {
	r := NewRoster()
	assert.Equal(t, 0, r.Len())

	r.Add("미적분학", EnrollmentTuple{PersonName: "Alice", CourseTitle: "미적분학1", SectionNumber: "001"})
	r.Add("미적분학", EnrollmentTuple{PersonName: "Bob", CourseTitle: "미적분학2", SectionNumber: "002"})
	r.Add("물리학", EnrollmentTuple{PersonName: "Alice", CourseTitle: "물리학", SectionNumber: "003"})

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 3, r.TupleCount())

	rec, ok := r.Get("미적분학")
	require.True(t, ok)
	assert.Equal(t, 2, rec.Len())
	assert.Equal(t, CourseKey("미적분학"), rec.Key)

	_, ok = r.Get("화학")
	assert.False(t, ok)
}

func TestRosterEntriesSorted(t *testing.T) {
	r := NewRoster()
	for _, k := range []CourseKey{"화학", "물리학", "미적분학", "경제학"} {
		r.Add(k, EnrollmentTuple{PersonName: "X", CourseTitle: string(k)})
	}

	entries := r.Entries()
	require.Len(t, entries, 4)
	for i := 1; i < len(entries); i++ {
		assert.Less(t, string(entries[i-1].Key), string(entries[i].Key))
	}
	assert.Equal(t, CourseKey("경제학"), entries[0].Key)
	assert.Equal(t, CourseKey("화학"), entries[3].Key)

	// repeated calls agree
	assert.Equal(t, entries, r.Entries())
}
