// Package tabular turns an uploaded spreadsheet-like file into a
// row-oriented table with named columns, preserving file order.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is an immutable-by-convention grid of string cells under a
// header row. Rows keep the order they had in the uploaded file.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// Parse picks a decoder from the uploaded filename: .xlsx/.xlsm go
// through the spreadsheet reader, everything else is treated as CSV.
func Parse(filename string, r io.Reader) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return ParseXLSX(r)
	default:
		return ParseCSV(r)
	}
}

// ParseCSV reads comma-separated values with a header row.
func ParseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty table: missing header row")
	}
	return build(records[0], records[1:])
}

// ParseXLSX reads the first sheet of a spreadsheet, first row as header.
func ParseXLSX(r io.Reader) (*Table, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("empty spreadsheet: no sheets")
	}
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty table: missing header row")
	}
	return build(rows[0], rows[1:])
}

func build(header []string, data [][]string) (*Table, error) {
	columns := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("blank column name at position %d", i+1)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		columns[i] = name
		index[name] = i
	}

	rows := make([][]string, 0, len(data))
	for _, raw := range data {
		// Spreadsheet readers drop trailing empty cells; pad so every
		// row spans all columns.
		row := make([]string, len(columns))
		copy(row, raw)
		rows = append(rows, row)
	}

	return &Table{columns: columns, index: index, rows: rows}, nil
}

// Columns returns the header names in file order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// HasColumn reports whether a named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Value returns the cell at the given data row (0-based) and column.
func (t *Table) Value(row int, column string) (string, bool) {
	col, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.rows) {
		return "", false
	}
	return t.rows[row][col], true
}

// Transform applies fn to every value of a column in place, stopping
// at the first error. Missing columns are a no-op.
func (t *Table) Transform(column string, fn func(string) (string, error)) error {
	col, ok := t.index[column]
	if !ok {
		return nil
	}
	for i := range t.rows {
		value, err := fn(t.rows[i][col])
		if err != nil {
			return err
		}
		t.rows[i][col] = value
	}
	return nil
}
