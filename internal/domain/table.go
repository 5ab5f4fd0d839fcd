package domain

import (
	"fmt"
	"strings"
)

// Table is a delimited source file held in memory: a header and its raw cells.
// Cells are kept as text; numeric interpretation happens at enrichment time.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of a column by exact (trimmed) header name.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if strings.TrimSpace(c) == name {
			return i, true
		}
	}
	return -1, false
}

// Require checks that every named column is present in the header.
func (t *Table) Require(columns ...string) error {
	for _, c := range columns {
		if _, ok := t.ColumnIndex(c); !ok {
			return fmt.Errorf("%s: %w: %q", t.Name, ErrMissingColumn, c)
		}
	}
	return nil
}

// Cell returns the value at row i for column idx, or "" for short rows.
func (t *Table) Cell(i, idx int) string {
	row := t.Rows[i]
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Dataset groups the four source tables that feed the cost pipeline.
type Dataset struct {
	Orders     *Table
	Routes     *Table
	Deliveries *Table
	Costs      *Table
}

// Validate checks that all four tables are present and carry their required columns.
func (d *Dataset) Validate() error {
	if d == nil {
		return ErrNilDataset
	}

	sources := []struct {
		name  string
		table *Table
	}{
		{SourceOrders, d.Orders},
		{SourceRoutes, d.Routes},
		{SourceDelivery, d.Deliveries},
		{SourceCosts, d.Costs},
	}
	for _, s := range sources {
		if s.table == nil {
			return fmt.Errorf("validate dataset: %w: %s", ErrSourceMissing, s.name)
		}
		if err := s.table.Require(RequiredColumns(s.name)...); err != nil {
			return fmt.Errorf("validate dataset: %w", err)
		}
	}

	return nil
}
