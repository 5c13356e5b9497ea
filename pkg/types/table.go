package types

import (
	"strings"

	"github.com/darthunder/bases/pkg/errors"
)

// Column describes one table column. WidthHint is the display size reported
// by the source (0 when unknown).
type Column struct {
	Name      string
	WidthHint int
}

// Row holds one value per table column, in column order
type Row []Value

// Table is an ordered column list plus ordered rows
type Table struct {
	Columns []Column
	Rows    []Row
}

// NewTable creates an empty table with the given column names
func NewTable(names ...string) *Table {
	cols := make([]Column, len(names))
	for i, name := range names {
		cols[i] = Column{Name: name}
	}
	return &Table{Columns: cols}
}

// AppendRow adds a row, rejecting values whose count differs from the column count
func (t *Table) AppendRow(values ...Value) error {
	if len(values) != len(t.Columns) {
		return errors.Newf(errors.ErrInvalidInput, "row has %d values, table has %d columns", len(values), len(t.Columns)).
			WithDetail("row", len(t.Rows))
	}
	row := make(Row, len(values))
	copy(row, values)
	t.Rows = append(t.Rows, row)
	return nil
}

// Validate checks that every row matches the column arity
func (t *Table) Validate() error {
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return errors.Newf(errors.ErrInvalidInput, "row %d has %d values, table has %d columns", i, len(row), len(t.Columns)).
				WithDetail("row", i)
		}
	}
	return nil
}

// Len returns the number of rows
func (t *Table) Len() int { return len(t.Rows) }

// ColumnNames returns the column names in display order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// ColumnIndex finds a column by name, ignoring case. Returns -1 when absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if strings.EqualFold(c.Name, name) {
			return i
		}
	}
	return -1
}

// RowRecord returns row i as a Record keyed by column name
func (t *Table) RowRecord(i int) *Record {
	rec := NewRecord()
	for j, c := range t.Columns {
		rec.Set(c.Name, t.Rows[i][j])
	}
	return rec
}
