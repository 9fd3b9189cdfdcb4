package model

// Record is a schema-agnostic row: business column name to raw cell
// value. Cells may be numeric, string, time-like, or nil; nothing about
// the type is guaranteed.
type Record map[string]interface{}

// Table is the materialized record collection handed to the engine for
// one computation. It is created fresh per call and discarded after the
// envelope is built.
type Table struct {
	Rows []Record

	// Provenance, reported in the envelope summary when set.
	Source string
	Schema string

	cols map[string]bool
}

// NewTable wraps rows with provenance metadata.
func NewTable(rows []Record, source, schema string) *Table {
	return &Table{Rows: rows, Source: source, Schema: schema}
}

// Columns returns the set of column names present in the table: the
// union of keys across all rows, matching how a frame built from loose
// records discovers its schema.
func (t *Table) Columns() map[string]bool {
	if t.cols == nil {
		t.cols = make(map[string]bool)
		for _, row := range t.Rows {
			for name := range row {
				t.cols[name] = true
			}
		}
	}
	return t.cols
}

// HasColumns reports whether every named column exists in the table.
// A column whose values are all nil still counts as present; only a
// column that appears in no row is absent.
func (t *Table) HasColumns(names ...string) bool {
	cols := t.Columns()
	for _, name := range names {
		if !cols[name] {
			return false
		}
	}
	return true
}

// ColumnNames returns the column set as a slice, in no particular order.
func (t *Table) ColumnNames() []string {
	cols := t.Columns()
	names := make([]string, 0, len(cols))
	for name := range cols {
		names = append(names, name)
	}
	return names
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
