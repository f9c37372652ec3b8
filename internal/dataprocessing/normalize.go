package dataprocessing

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"classmate/pkg/contracts/domain"
)

// Hangul syllable block, 가..힣.
const (
	hangulFirst = '가'
	hangulLast  = '힣'
)

// NormalizeCourseKey keeps only the Hangul syllables of title after NFC
// composition. Digits, spaces, punctuation and Latin letters are dropped, so
// "미적분학 1" and "미적분학2" share the key "미적분학".
func NormalizeCourseKey(title string) domain.CourseKey {
	composed := norm.NFC.String(title)

	var b strings.Builder
	b.Grow(len(composed))
	for _, r := range composed {
		if r >= hangulFirst && r <= hangulLast {
			b.WriteRune(r)
		}
	}
	return domain.CourseKey(b.String())
}
