package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SampleRoster is a small export with two shared courses, one singleton and
// a blank slot. The column after 이름 is the bookkeeping column.
var SampleRoster = [][]string{
	{"이름", "학번", "과목1", "과목2", "과목3"},
	{"임은성", "2020001", "초급프랑스어1 (003)", "미적분학 1(01)", ""},
	{"Bob", "2020002", "초급프랑스어2(007)", "일반물리학(2분반)", "미적분학2 (02)"},
	{"Carol", "2020003", "경제학원론(1)", "", ""},
}

// WriteRosterCSV writes rows to <dir>/<base>.csv in the roster export
// dialect and returns the path. Cells containing a comma, pipe or newline
// are pipe quoted.
func WriteRosterCSV(t *testing.T, dir, base string, rows [][]string) string {
	t.Helper()

	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quoteCell(cell))
		}
		b.WriteByte('\n')
	}

	path := filepath.Join(dir, base+".csv")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatalf("failed to write roster fixture: %v", err)
	}
	return path
}

func quoteCell(cell string) string {
	if !strings.ContainsAny(cell, ",|\n") {
		return cell
	}
	return "|" + strings.ReplaceAll(cell, "|", "||") + "|"
}

// Chdir switches the working directory to dir for the rest of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(prev)
	})
}
