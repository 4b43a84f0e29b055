package model

import (
	"fmt"
	"sort"
)

// Table is a CSV file held in memory: one header row and the records as read.
type Table struct {
	Header []string
	Rows   [][]string
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

func (t *Table) DebugString() string {
	return fmt.Sprintf("header: %+v, rowCount: %+v", t.Header, t.Len())
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// WithColumn returns a copy of the table with values set as the named
// column. An existing column of that name is overwritten, otherwise the
// column is appended.
func (t *Table) WithColumn(name string, values []string) (*Table, error) {
	if len(values) != t.Len() {
		return nil, fmt.Errorf("column %q has %d values for %d rows", name, len(values), t.Len())
	}

	idx := t.ColumnIndex(name)
	header := append([]string{}, t.Header...)
	if idx < 0 {
		header = append(header, name)
	}

	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		newRow := append(make([]string, 0, len(header)), row...)
		if idx < 0 {
			newRow = append(newRow, values[i])
		} else {
			newRow[idx] = values[i]
		}
		rows[i] = newRow
	}

	return &Table{Header: header, Rows: rows}, nil
}

// SortedByKeys returns a copy of the table with rows reordered by ascending
// keys. Rows with equal keys keep their relative order.
func (t *Table) SortedByKeys(keys []int) (*Table, error) {
	if len(keys) != t.Len() {
		return nil, fmt.Errorf("%d sort keys for %d rows", len(keys), t.Len())
	}

	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]] < keys[order[b]]
	})

	rows := make([][]string, len(order))
	for i, idx := range order {
		rows[i] = t.Rows[idx]
	}
	return &Table{Header: append([]string{}, t.Header...), Rows: rows}, nil
}
