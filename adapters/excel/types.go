package excel

import (
	"time"

	"tabspect/domain/core"
)

// CellKind identifies the native type a cell carried in the workbook
type CellKind string

const (
	KindEmpty  CellKind = "empty"
	KindText   CellKind = "text"
	KindNumber CellKind = "number"
	KindBool   CellKind = "bool"
	KindTime   CellKind = "time"
)

// Cell holds one spreadsheet cell with its native type preserved
type Cell struct {
	Kind   CellKind  `json:"kind"`
	Text   string    `json:"text"` // formatted value as the spreadsheet displays it
	Number float64   `json:"number,omitempty"`
	Bool   bool      `json:"bool,omitempty"`
	Time   time.Time `json:"time,omitempty"`
}

// String returns the display form of the cell
func (c Cell) String() string {
	return c.Text
}

// Table represents one sheet loaded as named, ordered columns and positional rows
type Table struct {
	Sheet   string   `json:"sheet"`
	Headers []string `json:"headers"`
	Rows    [][]Cell `json:"rows"`
}

// RowCount returns the number of data rows (header excluded)
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Sample returns the first n rows, or all of them when fewer exist
func (t *Table) Sample(n int) [][]Cell {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	if n < 0 {
		n = 0
	}
	return t.Rows[:n]
}

// Column returns the display values of one column in row order
func (t *Table) Column(name string) []string {
	idx := -1
	for i, h := range t.Headers {
		if h == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, row[idx].Text)
	}
	return values
}

// Workbook represents an open spreadsheet file with one sheet loaded
type Workbook struct {
	ID         core.ID   `json:"id"`
	Path       string    `json:"path"`
	SheetNames []string  `json:"sheet_names"` // all sheets in the file, in workbook order
	Table      Table     `json:"table"`       // data of the selected sheet only
	LoadedAt   time.Time `json:"loaded_at"`
}
