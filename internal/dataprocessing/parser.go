package dataprocessing

import (
	"strings"
	"unicode"

	apperrors "classmate/internal/errors"
	"classmate/pkg/contracts/domain"
)

const bom = "\uFEFF"

// Extract converts a roster table into enrollment tuples.
//
// table[0] is the header. Line numbers in errors count the header as line 1.
// Tuples come out row-major, left to right.
func Extract(table [][]string, opts ExtractOptions) ([]domain.EnrollmentTuple, error) {
	opts = opts.withDefaults()

	if len(table) == 0 {
		return nil, apperrors.NewMissingIdentityColumnError(opts.IdentityColumn)
	}

	identityIdx := findIdentityColumn(table[0], opts.IdentityColumn)
	if identityIdx < 0 {
		return nil, apperrors.NewMissingIdentityColumnError(opts.IdentityColumn)
	}

	firstSlot := identityIdx + 1 + opts.SkipColumns

	var tuples []domain.EnrollmentTuple
	for i, row := range table[1:] {
		line := i + 2
		if len(row) <= identityIdx {
			return nil, apperrors.NewRowTooShortError(line, len(row), identityIdx)
		}

		person := row[identityIdx]
		for col := firstSlot; col < len(row); col++ {
			cell := row[col]
			if strings.TrimSpace(cell) == "" {
				continue
			}

			title, rawSection, ok := splitCourseCell(cell)
			if !ok {
				return nil, apperrors.NewMalformedCellError(line, col+1, cell)
			}
			tuples = append(tuples, domain.NewEnrollmentTuple(person, title, rawSection))
		}
	}

	return tuples, nil
}

// findIdentityColumn returns the index of the first header cell equal to
// label, or -1.
func findIdentityColumn(header []string, label string) int {
	for i, cell := range header {
		if strings.TrimSpace(strings.TrimPrefix(cell, bom)) == label {
			return i
		}
	}
	return -1
}

// splitCourseCell strips all whitespace from cell and splits it on the first
// "(". The closing parenthesis is not required.
func splitCourseCell(cell string) (title, rawSection string, ok bool) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, cell)
	return strings.Cut(compact, "(")
}
