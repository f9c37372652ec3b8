package dataprocessing

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "classmate/internal/errors"
	"classmate/pkg/contracts/domain"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		table [][]string
		opts  ExtractOptions
		want  []domain.EnrollmentTuple
	}{
		{
			name: "identity column in the middle",
			table: [][]string{
				{"ID", "Name", "X", "Slot1", "Slot2"},
				{"1", "Alice", "dummy", "CourseA1 (001)", "CourseB (2)"},
			},
			opts: ExtractOptions{IdentityColumn: "Name", SkipColumns: 1},
			want: []domain.EnrollmentTuple{
				{PersonName: "Alice", CourseTitle: "CourseA1", SectionNumber: "001"},
				{PersonName: "Alice", CourseTitle: "CourseB", SectionNumber: "2"},
			},
		},
		{
			name: "default identity label",
			table: [][]string{
				{"이름", "학번", "과목1", "과목2"},
				{"임은성", "2020", "초급 프랑스어1 (003)", ""},
				{"Bob", "2021", "초급프랑스어2(007)", "미적분학1 (01분반)"},
			},
			opts: DefaultOptions(),
			want: []domain.EnrollmentTuple{
				{PersonName: "임은성", CourseTitle: "초급프랑스어1", SectionNumber: "003"},
				{PersonName: "Bob", CourseTitle: "초급프랑스어2", SectionNumber: "007"},
				{PersonName: "Bob", CourseTitle: "미적분학1", SectionNumber: "01"},
			},
		},
		{
			name: "blank and whitespace-only cells dropped",
			table: [][]string{
				{"이름", "skip", "a", "b", "c"},
				{"Alice", "x", "   ", "물리학(1)", "\t"},
			},
			opts: DefaultOptions(),
			want: []domain.EnrollmentTuple{
				{PersonName: "Alice", CourseTitle: "물리학", SectionNumber: "1"},
			},
		},
		{
			name: "splits on first parenthesis only",
			table: [][]string{
				{"이름", "skip", "a"},
				{"Alice", "x", "화학(실험)(02)"},
			},
			opts: DefaultOptions(),
			want: []domain.EnrollmentTuple{
				{PersonName: "Alice", CourseTitle: "화학", SectionNumber: "02"},
			},
		},
		{
			name: "header with bom and padding",
			table: [][]string{
				{"\uFEFF 이름 ", "skip", "a"},
				{"Alice", "x", "화학(1"},
			},
			opts: DefaultOptions(),
			want: []domain.EnrollmentTuple{
				{PersonName: "Alice", CourseTitle: "화학", SectionNumber: "1"},
			},
		},
		{
			name: "no skip column",
			table: [][]string{
				{"이름", "a"},
				{"Alice", "화학(1)"},
			},
			opts: ExtractOptions{SkipColumns: 0},
			want: []domain.EnrollmentTuple{
				{PersonName: "Alice", CourseTitle: "화학", SectionNumber: "1"},
			},
		},
		{
			name: "row ending at identity column",
			table: [][]string{
				{"이름", "skip", "a"},
				{"Alice"},
			},
			opts: DefaultOptions(),
			want: nil,
		},
		{
			name:  "header only",
			table: [][]string{{"이름", "skip"}},
			opts:  DefaultOptions(),
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.table, tt.opts)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtract_Errors(t *testing.T) {
	tests := []struct {
		name     string
		table    [][]string
		sentinel error
		context  map[string]interface{}
	}{
		{
			name:     "empty table",
			table:    nil,
			sentinel: apperrors.ErrMissingIdentityColumn,
		},
		{
			name:     "no identity label",
			table:    [][]string{{"Name", "a"}, {"Alice", "화학(1)"}},
			sentinel: apperrors.ErrMissingIdentityColumn,
		},
		{
			name:     "row shorter than identity column",
			table:    [][]string{{"ID", "이름", "skip"}, {"1", "Alice", "x"}, {"2"}},
			sentinel: apperrors.ErrRowTooShort,
			context:  map[string]interface{}{"line": 3},
		},
		{
			name:     "cell without parenthesis",
			table:    [][]string{{"이름", "skip", "a", "b"}, {"Alice", "x", "화학(1)", "물리학 2"}},
			sentinel: apperrors.ErrMalformedCell,
			context:  map[string]interface{}{"line": 2, "column": 4, "cell": "물리학 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.table, DefaultOptions())
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)

			var appErr *apperrors.AppError
			require.True(t, errors.As(err, &appErr))
			for k, v := range tt.context {
				assert.Equal(t, v, appErr.Context[k], k)
			}
		})
	}
}

func TestExtract_TupleCountMatchesFilledCells(t *testing.T) {
	table := [][]string{
		{"이름", "skip", "a", "b", "c"},
		{"A", "x", "가(1)", "", "나(2)"},
		{"B", "가(9)", "다(3)", "라(4)", "마(5)"},
		{"C", "x"},
	}

	want := 0
	for _, row := range table[1:] {
		for _, cell := range row[2:] {
			if cell != "" {
				want++
			}
		}
	}

	got, err := Extract(table, DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, got, want)
}
