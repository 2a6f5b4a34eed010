package table

import (
	"fmt"
	"strconv"
	"strings"
)

type (
	// Kind discriminates the scalar types a cell can hold.
	Kind uint8

	// Value is a single cell: missing, a number, or text.
	Value struct {
		Kind Kind
		Num  float64
		Text string
	}

	Row []Value

	// Table is an ordered set of uniform-schema rows. Column names are
	// normalized once at load time and never change afterwards. Tables are
	// immutable once built; every pipeline stage derives a new Table.
	Table struct {
		cols     []string
		colIndex map[string]int
		rows     []Row
	}

	// ColumnType is the inferred type of a column, for introspection.
	ColumnType struct {
		Name string `json:"name"`
		// "number", "text", or "unknown" when every value is missing
		Type string `json:"type"`
	}
)

const (
	KindMissing Kind = iota
	KindNumber
	KindText
)

var ErrDuplicateColumn = fmt.Errorf("duplicate column name after normalization")

func Missing() Value {
	return Value{Kind: KindMissing}
}

func Number(f float64) Value {
	return Value{Kind: KindNumber, Num: f}
}

func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

func (v Value) IsMissing() bool {
	return v.Kind == KindMissing
}

// Display returns the human-readable form of a value, used for filter
// matching and hover text. Numbers drop trailing zeros.
func (v Value) Display() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindText:
		return v.Text
	default:
		return ""
	}
}

// NormalizeColumn applies the one-time column name normalization: trim
// surrounding whitespace, lowercase, internal spaces to underscores.
// It is stable under repetition.
func NormalizeColumn(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "_")
	return name
}

// New creates an empty table with the given (already normalized) columns.
func New(cols []string) (*Table, error) {
	t := &Table{
		cols:     append([]string{}, cols...),
		colIndex: make(map[string]int, len(cols)),
	}
	for i, c := range cols {
		if _, exists := t.colIndex[c]; exists {
			return nil, fmt.Errorf("column '%s': %w", c, ErrDuplicateColumn)
		}
		t.colIndex[c] = i
	}
	return t, nil
}

// AppendRow adds a row during construction. Rows are never mutated after
// the table is handed off, so derived tables can share row storage.
func (t *Table) AppendRow(r Row) error {
	if len(r) != len(t.cols) {
		return fmt.Errorf("row has %d values, table has %d columns", len(r), len(t.cols))
	}
	t.rows = append(t.rows, r)
	return nil
}

func (t *Table) NumRows() int {
	return len(t.rows)
}

func (t *Table) NumColumns() int {
	return len(t.cols)
}

func (t *Table) Columns() []string {
	return append([]string{}, t.cols...)
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.colIndex[name]
	return ok
}

func (t *Table) HasColumns(names ...string) bool {
	for _, n := range names {
		if !t.HasColumn(n) {
			return false
		}
	}
	return true
}

func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.colIndex[name]
	return i, ok
}

// Value returns the cell at (row, column index).
func (t *Table) Value(row, col int) Value {
	return t.rows[row][col]
}

// ValueNamed returns the cell at (row, column name), missing if the column
// does not exist.
func (t *Table) ValueNamed(row int, name string) Value {
	i, ok := t.colIndex[name]
	if !ok {
		return Missing()
	}
	return t.rows[row][i]
}

// Select derives a new table containing the rows at the given indices, in
// the given order. Row storage is shared, never copied.
func (t *Table) Select(indices []int) *Table {
	nt := &Table{
		cols:     t.cols,
		colIndex: t.colIndex,
		rows:     make([]Row, 0, len(indices)),
	}
	for _, i := range indices {
		nt.rows = append(nt.rows, t.rows[i])
	}
	return nt
}

// DistinctValues returns the distinct display values of a column in
// first-occurrence order, skipping missing cells. Returns nil for an
// absent column.
func (t *Table) DistinctValues(name string) []string {
	col, ok := t.colIndex[name]
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for i := range t.rows {
		v := t.rows[i][col]
		if v.IsMissing() {
			continue
		}
		s := v.Display()
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// ColumnTypes infers a type per column from the values present: "number"
// if every non-missing value is numeric, "unknown" if every value is
// missing, "text" otherwise.
func (t *Table) ColumnTypes() []ColumnType {
	out := make([]ColumnType, 0, len(t.cols))
	for ci, name := range t.cols {
		sawNumber := false
		sawText := false
		for ri := range t.rows {
			switch t.rows[ri][ci].Kind {
			case KindNumber:
				sawNumber = true
			case KindText:
				sawText = true
			}
			if sawText {
				break
			}
		}
		ct := ColumnType{Name: name}
		switch {
		case sawText:
			ct.Type = "text"
		case sawNumber:
			ct.Type = "number"
		default:
			ct.Type = "unknown"
		}
		out = append(out, ct)
	}
	return out
}
