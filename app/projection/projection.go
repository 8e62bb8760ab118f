package projection

import (
	"fmt"
	"strconv"
	"strings"

	"sheetlens/app/session"
	"sheetlens/app/textpolicy"
)

// Package projection derives everything the presentation layer shows and the
// exporter writes from a session snapshot. All functions are pure: they are
// safely recomputable on every read, and any caching an embedder adds must be
// observably equivalent to recomputation.

// ActiveSheet resolves the sheet at the snapshot's active index. ok is false
// when no workbook is loaded or the index is out of range.
func ActiveSheet(snap session.Snapshot) (session.Sheet, bool) {
	if snap.ActiveIndex < 0 || snap.ActiveIndex >= len(snap.Sheets) {
		return session.Sheet{}, false
	}
	return snap.Sheets[snap.ActiveIndex], true
}

// ColumnKeys returns the ordered key set for the active sheet's headers, or
// nil when there is no active sheet.
func ColumnKeys(snap session.Snapshot, policy textpolicy.Policy) []string {
	sheet, ok := ActiveSheet(snap)
	if !ok {
		return nil
	}
	return session.ColumnKeys(sheet.Headers, policy)
}

// VisibleRows returns the active sheet's rows remaining after the search
// filter, in original order. A search term that is empty after trimming
// filters nothing. Matching is case-folded, canonically decomposed substring
// containment over every cell of a row; a row survives when at least one
// cell matches.
func VisibleRows(snap session.Snapshot, policy textpolicy.Policy) [][]session.Cell {
	sheet, ok := ActiveSheet(snap)
	if !ok {
		return nil
	}
	term := strings.TrimSpace(snap.SearchTerm)
	if term == "" {
		return sheet.Rows
	}
	needle := policy.Fold(term)
	var visible [][]session.Cell
	for _, row := range sheet.Rows {
		for _, cell := range row {
			if strings.Contains(policy.Fold(CellString(cell)), needle) {
				visible = append(visible, row)
				break
			}
		}
	}
	return visible
}

// SelectedColumns returns the 0-based positions of the active sheet's columns
// whose key maps to true in the selection map, in ascending positional order.
// Columns can only be included or excluded, never reordered.
func SelectedColumns(snap session.Snapshot, policy textpolicy.Policy) []int {
	sheet, ok := ActiveSheet(snap)
	if !ok {
		return nil
	}
	var indices []int
	for i, header := range sheet.Headers {
		if snap.Selected[session.ColumnKey(header, i, policy)] {
			indices = append(indices, i)
		}
	}
	return indices
}

// ExportMatrix builds the header+data grid handed to the workbook writer:
// one header row followed by the visible (filtered) rows, restricted to the
// selected columns in their original relative order. A nil result signals the
// nothing-to-export condition — no columns selected, or a sheet with no data
// rows at all; the export trigger must surface it to the user instead of
// invoking the writer. A search filter that matches nothing still exports the
// header row: the sheet has data, the filter just hides it.
//
// Header cells prefer the trimmed non-empty alias, then the original header
// text, then a synthesized placeholder. Data cells keep their typed values;
// absent cells become the empty string.
func ExportMatrix(snap session.Snapshot, policy textpolicy.Policy) [][]session.Cell {
	sheet, ok := ActiveSheet(snap)
	if !ok || len(sheet.Rows) == 0 {
		return nil
	}
	indices := SelectedColumns(snap, policy)
	if len(indices) == 0 {
		return nil
	}

	header := make([]session.Cell, len(indices))
	for i, idx := range indices {
		header[i] = exportHeader(sheet.Headers[idx], idx, snap.Aliases, policy)
	}

	visible := VisibleRows(snap, policy)
	matrix := make([][]session.Cell, 0, len(visible)+1)
	matrix = append(matrix, header)
	for _, row := range visible {
		out := make([]session.Cell, len(indices))
		for i, idx := range indices {
			if idx < len(row) && row[idx] != nil {
				out[i] = row[idx]
			} else {
				out[i] = ""
			}
		}
		matrix = append(matrix, out)
	}
	return matrix
}

// exportHeader resolves the output name for one column: alias, original
// header, then placeholder.
func exportHeader(header string, index int, aliases map[string]string, policy textpolicy.Policy) string {
	key := session.ColumnKey(header, index, policy)
	if alias := strings.TrimSpace(aliases[key]); alias != "" {
		return alias
	}
	if strings.TrimSpace(header) != "" {
		return header
	}
	return policy.Placeholder(index + 1)
}

// CellString renders a cell for display and search matching. Absent cells
// become the empty string; numbers use the shortest round-trip decimal form.
func CellString(cell session.Cell) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
