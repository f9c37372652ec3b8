package files

import (
	"bytes"
	"fmt"
	"io"

	apperrors "classmate/internal/errors"
)

// Roster exports quote fields with '|' rather than '"', which encoding/csv
// cannot be configured for.
const (
	DefaultComma = ','
	DefaultQuote = '|'
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// TableReader reads delimited text into rows of cells.
//
// A field that starts with Quote runs to the next lone Quote; a doubled Quote
// inside it is a literal Quote and newlines are kept. Quote anywhere else is
// an ordinary character, as is '"'. Records end at LF or CRLF, a leading
// UTF-8 BOM is dropped and blank lines are skipped.
type TableReader struct {
	Comma byte
	Quote byte
}

// NewTableReader returns a reader for the roster export dialect.
func NewTableReader() *TableReader {
	return &TableReader{Comma: DefaultComma, Quote: DefaultQuote}
}

// ReadAll parses every record in r.
func (tr *TableReader) ReadAll(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read table", err)
	}
	return tr.Parse(data)
}

// Parse parses every record in data.
func (tr *TableReader) Parse(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var (
		rows   [][]string
		record []string
		field  bytes.Buffer
		line   = 1
	)

	endField := func() {
		record = append(record, field.String())
		field.Reset()
	}
	endRecord := func() {
		endField()
		if len(record) == 1 && record[0] == "" {
			record = nil
			return
		}
		rows = append(rows, record)
		record = nil
	}

	for i := 0; i < len(data); {
		c := data[i]

		// quoted field
		if field.Len() == 0 && c == tr.Quote && atFieldStart(data, i, tr.Comma) {
			startLine := line
			i++
			closed := false
			for i < len(data) {
				c = data[i]
				if c == tr.Quote {
					if i+1 < len(data) && data[i+1] == tr.Quote {
						field.WriteByte(tr.Quote)
						i += 2
						continue
					}
					i++
					closed = true
					break
				}
				if c == '\n' {
					line++
				}
				field.WriteByte(c)
				i++
			}
			if !closed {
				return nil, apperrors.NewParsingError(
					fmt.Sprintf("unterminated %q quoted field", tr.Quote), nil).
					WithContext("line", startLine)
			}
			continue
		}

		switch {
		case c == tr.Comma:
			endField()
			i++
		case c == '\n':
			endRecord()
			line++
			i++
		case c == '\r' && i+1 < len(data) && data[i+1] == '\n':
			i++
		default:
			field.WriteByte(c)
			i++
		}
	}

	if field.Len() > 0 || len(record) > 0 {
		endRecord()
	}

	return rows, nil
}

// atFieldStart reports whether position i begins a field.
func atFieldStart(data []byte, i int, comma byte) bool {
	if i == 0 {
		return true
	}
	prev := data[i-1]
	return prev == comma || prev == '\n'
}
