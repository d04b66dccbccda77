// Package sheet reads spreadsheet exports into rows addressed by column label.
// Pure functions: file in, rows out. No database dependencies.
package sheet

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingColumn is returned by Row.Lookup when the header has no such label.
	ErrMissingColumn = errors.New("missing column")
	// ErrUnsupportedFormat is returned by Read for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
)

// Table is a header plus its data rows.
type Table struct {
	columns []string
	index   map[string]int
	rows    []Row
}

// Row is one data row. Cells are addressed by header label.
type Row struct {
	// Line is the 1-based row number in the source sheet.
	Line int

	index map[string]int
	cells []string
}

// NewTable builds a table from a header row and the records below it.
// firstLine is the source line number of records[0].
//
// Header labels are trimmed; empty labels are ignored and the first
// occurrence of a repeated label wins.
func NewTable(header []string, records [][]string, firstLine int) *Table {
	t := &Table{index: make(map[string]int, len(header))}

	for i, label := range header {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, dup := t.index[label]; dup {
			continue
		}
		t.index[label] = i
		t.columns = append(t.columns, label)
	}

	t.rows = make([]Row, 0, len(records))
	for i, rec := range records {
		t.rows = append(t.rows, Row{
			Line:  firstLine + i,
			index: t.index,
			cells: rec,
		})
	}

	return t
}

// Columns returns the header labels in sheet order.
func (t *Table) Columns() []string { return t.columns }

// Rows returns the data rows in sheet order.
func (t *Table) Rows() []Row { return t.rows }

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// HasColumn reports whether the header contains label.
func (t *Table) HasColumn(label string) bool {
	_, ok := t.index[label]
	return ok
}

// Lookup is the strict accessor: it returns ErrMissingColumn when the header
// has no such label. A present but empty cell yields "" and a nil error.
// Values are returned exactly as stored in the sheet.
func (r Row) Lookup(col string) (string, error) {
	i, ok := r.index[col]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingColumn, col)
	}
	if i >= len(r.cells) {
		return "", nil
	}
	return r.cells[i], nil
}

// GetOr is the lenient accessor: it returns def only when the column is
// missing from the header. A present but empty cell still yields "".
func (r Row) GetOr(col, def string) string {
	v, err := r.Lookup(col)
	if err != nil {
		return def
	}
	return v
}
