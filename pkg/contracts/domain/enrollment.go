package domain

import "fmt"

// EnrollmentTuple is one held course slot of one person, as read from a roster row.
//
// SectionNumber keeps only the ASCII digits of the raw section token, so
// "(001)" and "001분반)" both become "001". It may be empty.
type EnrollmentTuple struct {
	PersonName    string `json:"person_name" csv:"이름" validate:"required"`
	CourseTitle   string `json:"course_title" csv:"강의명"`
	SectionNumber string `json:"section_number" csv:"분반" validate:"omitempty,numeric"`
}

// NewEnrollmentTuple builds a tuple from the raw section token, dropping every
// non-digit character from it.
func NewEnrollmentTuple(person, title, rawSection string) EnrollmentTuple {
	return EnrollmentTuple{
		PersonName:    person,
		CourseTitle:   title,
		SectionNumber: DigitsOnly(rawSection),
	}
}

// DigitsOnly returns s with everything except '0'-'9' removed.
func DigitsOnly(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// String renders the tuple the way it appears in the roster report.
func (t EnrollmentTuple) String() string {
	return fmt.Sprintf("이름: %s, 강의명: %s, 분반: %s", t.PersonName, t.CourseTitle, t.SectionNumber)
}
