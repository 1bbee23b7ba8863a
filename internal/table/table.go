package table

import (
	"fmt"
	"sort"
)

// Table is an ordered sequence of rows over a fixed, ordered column set.
// Columns keep the order they were declared in; rows keep insertion order.
// Cell values are whatever the upstream stage produced (strings, numbers,
// times) — the table does not interpret them.
type Table struct {
	Columns []string
	Rows    [][]any
}

func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// AppendRow adds one row. The number of values must match the column set.
func (t *Table) AppendRow(values ...any) error {
	if len(values) != len(t.Columns) {
		return fmt.Errorf("row has %d values, table has %d columns", len(values), len(t.Columns))
	}
	t.Rows = append(t.Rows, values)
	return nil
}

// Empty reports whether the table has no rows. A table with a known column
// set but zero rows still counts as empty; a nil table is empty too.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

func (t *Table) NumRows() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

func (t *Table) NumColumns() int {
	if t == nil {
		return 0
	}
	return len(t.Columns)
}

// Record is a single flat mapping of metric name to value, e.g. a set of
// KPIs for one run.
type Record map[string]any

func (r Record) Empty() bool {
	return len(r) == 0
}

// FromRecord renders a record as a one-row table. Columns are sorted by name
// so the same record always produces the same table; Go maps carry no order
// to preserve.
func FromRecord(r Record) *Table {
	if len(r) == 0 {
		return New()
	}
	cols := make([]string, 0, len(r))
	for k := range r {
		cols = append(cols, k)
	}
	sort.Strings(cols)

	row := make([]any, len(cols))
	for i, c := range cols {
		row[i] = r[c]
	}
	t := New(cols...)
	t.Rows = append(t.Rows, row)
	return t
}
