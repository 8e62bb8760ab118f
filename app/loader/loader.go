package loader

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"sheetlens/app/session"
	"sheetlens/app/textpolicy"
)

// Package loader is the external-parser boundary. Workbook parsing is
// delegated entirely to excelize; this package only shapes the result into
// session sheets: first row becomes the header row (blank cells replaced by
// synthesized placeholders), remaining rows become typed data cells.

// spreadsheetExts are the file suffixes offered in the open dialog. Legacy
// .xls files that excelize cannot read surface as a parse failure.
var spreadsheetExts = []string{".xlsx", ".xls"}

// DialogPattern returns the file-dialog filter pattern for supported
// spreadsheet files, e.g. "*.xlsx;*.xls".
func DialogPattern() string {
	patterns := make([]string, len(spreadsheetExts))
	for i, ext := range spreadsheetExts {
		patterns[i] = "*" + ext
	}
	return strings.Join(patterns, ";")
}

// HasSpreadsheetExt reports whether the path carries one of the supported
// spreadsheet suffixes.
func HasSpreadsheetExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range spreadsheetExts {
		if ext == e {
			return true
		}
	}
	return false
}

// WorkbookDisplayName derives the workbook's display name from its path: the
// base filename without the spreadsheet suffix.
func WorkbookDisplayName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParseWorkbook reads every sheet of a workbook file. The first row of each
// sheet becomes its header row, padded to the sheet's widest row so trailing
// blank header cells are not lost; blank headers are synthesized via the
// policy placeholder. Remaining rows keep their typed cell values and may be
// ragged relative to the headers. The workbook's display name is derived from
// the file path.
//
// Parsing is all-or-nothing: any error leaves the caller's previous workbook
// untouched.
func ParseWorkbook(path string, policy textpolicy.Policy) (session.Workbook, error) {
	if path == "" {
		return session.Workbook{}, fmt.Errorf("file path is empty")
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return session.Workbook{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	names := f.GetSheetList()
	sheets := make([]session.Sheet, 0, len(names))
	for _, name := range names {
		sheet, err := parseSheet(f, name, policy)
		if err != nil {
			return session.Workbook{}, fmt.Errorf("sheet %q: %w", name, err)
		}
		sheets = append(sheets, sheet)
	}
	return session.Workbook{Name: WorkbookDisplayName(path), Sheets: sheets}, nil
}

func parseSheet(f *excelize.File, name string, policy textpolicy.Policy) (session.Sheet, error) {
	raw, err := f.GetRows(name)
	if err != nil {
		return session.Sheet{}, err
	}
	if len(raw) == 0 {
		return session.Sheet{Name: name}, nil
	}

	// GetRows trims trailing empty cells per row; pad the header row to the
	// sheet's widest row so every data column gets a header slot.
	width := 0
	for _, row := range raw {
		if len(row) > width {
			width = len(row)
		}
	}

	headers := make([]string, width)
	for i := 0; i < width; i++ {
		text := ""
		if i < len(raw[0]) {
			text = raw[0][i]
		}
		if strings.TrimSpace(text) == "" {
			text = policy.Placeholder(i + 1)
		}
		headers[i] = text
	}

	rows := make([][]session.Cell, 0, len(raw)-1)
	for r, row := range raw[1:] {
		cells := make([]session.Cell, len(row))
		for c, value := range row {
			cells[c] = typedCell(f, name, c, r+2, value)
		}
		rows = append(rows, cells)
	}
	return session.Sheet{Name: name, Headers: headers, Rows: rows}, nil
}

// typedCell converts a raw cell string to a typed value using the cell's
// stored type. Numeric cells carry no type attribute in the file, so an
// unset type with a parseable value is treated as a number; everything else
// stays a string.
func typedCell(f *excelize.File, sheet string, col, row int, value string) session.Cell {
	axis, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return value
	}
	ct, err := f.GetCellType(sheet, axis)
	if err != nil {
		return value
	}
	switch ct {
	case excelize.CellTypeBool:
		if b, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return b
		}
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if value == "" {
			return value
		}
		if n, err := strconv.ParseFloat(value, 64); err == nil {
			return n
		}
	}
	return value
}
