package exporter

import (
	"bufio"
	"fmt"
	"io"

	"classmate/pkg/contracts/domain"
)

// RosterHeaders are the column headers of the tabular exports
var RosterHeaders = []string{"과목", "이름", "강의명", "분반"}

// formatCourseHeader formats the first line of a course block
func formatCourseHeader(key domain.CourseKey) string {
	return fmt.Sprintf("[강의분류명] %s", key)
}

// formatMember formats one member line of a course block
func formatMember(t domain.EnrollmentTuple) string {
	return t.String()
}

// writeBlocks writes one block per course in key order: the header line,
// one line per member sorted by course title, then a blank line.
func writeBlocks(w io.Writer, roster *domain.Roster) error {
	bw := bufio.NewWriter(w)
	for _, entry := range roster.Entries() {
		fmt.Fprintln(bw, formatCourseHeader(entry.Key))
		for _, member := range entry.Record.SortedMembers() {
			fmt.Fprintln(bw, formatMember(member))
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// rosterRows flattens the roster into one row per member, in render order.
func rosterRows(roster *domain.Roster) [][]string {
	rows := make([][]string, 0, roster.TupleCount())
	for _, entry := range roster.Entries() {
		for _, m := range entry.Record.SortedMembers() {
			rows = append(rows, []string{string(entry.Key), m.PersonName, m.CourseTitle, m.SectionNumber})
		}
	}
	return rows
}
