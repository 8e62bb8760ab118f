package session

import (
	"strconv"
	"strings"

	"sheetlens/app/textpolicy"
)

// Cell is a single spreadsheet cell value. The loader produces string, float64
// or bool cells; nil marks an absent cell. Rows are not required to be
// rectangular relative to headers; readers treat missing cells as empty.
type Cell = any

// Sheet is one tabular unit of a workbook: a header row plus data rows.
// Sheet names are used as list keys by the frontend and should be unique
// within a workbook, though this is not enforced.
type Sheet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	Rows    [][]Cell `json:"rows"`
}

// Workbook is the full parsed document. It is replaced wholesale on every
// load and cleared on reset; there are no partial updates.
type Workbook struct {
	Name   string  `json:"name"`
	Sheets []Sheet `json:"sheets"`
}

// keyDelimiter joins header text and column position into a column key.
// "::" is not expected to occur in header text; the positional suffix keeps
// keys pairwise distinct even when it does.
const keyDelimiter = "::"

// ColumnKey derives the identity for a column from its header text and
// 0-based position. A header that is blank after trimming uses the policy
// placeholder for the 1-based position instead. Keys are recomputed whenever
// the active sheet changes and are not stable across sheet switches.
func ColumnKey(header string, index int, policy textpolicy.Policy) string {
	text := strings.TrimSpace(header)
	if text == "" {
		text = policy.Placeholder(index + 1)
	}
	return text + keyDelimiter + strconv.Itoa(index)
}

// ColumnKeys derives the ordered key set for a header row.
func ColumnKeys(headers []string, policy textpolicy.Policy) []string {
	keys := make([]string, len(headers))
	for i, h := range headers {
		keys[i] = ColumnKey(h, i, policy)
	}
	return keys
}
