package excel

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"tabspect/domain/core"
	"tabspect/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Reader loads xlsx workbooks into typed in-memory tables
type Reader struct {
	filePath string
}

// NewReader creates a new workbook reader
func NewReader(filePath string) *Reader {
	return &Reader{filePath: filePath}
}

// ReadWorkbook loads the first sheet of the workbook
func (r *Reader) ReadWorkbook() (*Workbook, error) {
	return r.ReadSheet("")
}

// ReadSheet loads the named sheet, or the first sheet when name is empty.
// The returned Workbook lists every sheet name but carries only the
// selected sheet's data.
func (r *Reader) ReadSheet(name string) (*Workbook, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.FileNotFound(r.filePath)
	}

	openStart := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.FormatError("failed to open workbook", err)
	}
	defer f.Close()
	log.Printf("[WorkbookReader] %s opened in %.2fms",
		r.filePath, float64(time.Since(openStart).Nanoseconds())/1e6)

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.FormatError("workbook has no sheets", nil)
	}
	if name == "" {
		name = sheets[0]
	} else if !containsSheet(sheets, name) {
		return nil, errors.InvalidInput("workbook has no sheet named " + name)
	}

	readStart := time.Now()
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, errors.FormatError("failed to read sheet "+name, err)
	}
	log.Printf("[WorkbookReader] sheet %q read in %.2fms (%d rows)",
		name, float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	if len(rows) == 0 {
		return nil, errors.FormatError("sheet "+name+" has no header row", nil)
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	table := Table{
		Sheet:   name,
		Headers: headers,
		Rows:    make([][]Cell, 0, len(rows)-1),
	}
	for i := 1; i < len(rows); i++ {
		cells := make([]Cell, len(headers))
		for j := range headers {
			var text string
			if j < len(rows[i]) {
				text = strings.TrimSpace(rows[i][j])
			}
			cells[j] = r.typeCell(f, name, j, i, text)
		}
		table.Rows = append(table.Rows, cells)
	}

	log.Printf("[WorkbookReader] %s processed (%d columns, %d rows)",
		r.filePath, len(headers), table.RowCount())

	return &Workbook{
		ID:         core.NewID(),
		Path:       r.filePath,
		SheetNames: sheets,
		Table:      table,
		LoadedAt:   time.Now(),
	}, nil
}

// typeCell resolves the native type of one cell using the workbook's own
// cell-type record, falling back to the display text when the file does
// not carry one. colIdx and rowIdx are 0-based data coordinates; data row
// 0 sits on spreadsheet row 2, below the header.
func (r *Reader) typeCell(f *excelize.File, sheet string, colIdx, rowIdx int, text string) Cell {
	if text == "" {
		return Cell{Kind: KindEmpty}
	}

	cell := Cell{Kind: KindText, Text: text}

	ref, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
	if err != nil {
		return cell
	}
	cellType, err := f.GetCellType(sheet, ref)
	if err != nil {
		return cell
	}

	switch cellType {
	case excelize.CellTypeBool:
		cell.Kind = KindBool
		cell.Bool = strings.EqualFold(text, "true") || text == "1"
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		// Dates live in number cells with a date style; the display text
		// tells the two apart.
		if n, perr := strconv.ParseFloat(text, 64); perr == nil {
			cell.Kind = KindNumber
			cell.Number = n
		} else if ts, ok := parseTime(text); ok {
			cell.Kind = KindTime
			cell.Time = ts
		}
	case excelize.CellTypeDate:
		if ts, ok := parseTime(text); ok {
			cell.Kind = KindTime
			cell.Time = ts
		}
	}

	return cell
}

// timeLayouts covers the display formats excelize produces for date and
// datetime styled cells.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01-02-06 15:04",
	"01-02-06",
	"1/2/06 15:04",
	"1/2/2006",
}

func parseTime(text string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, text); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func containsSheet(sheets []string, name string) bool {
	for _, s := range sheets {
		if s == name {
			return true
		}
	}
	return false
}
