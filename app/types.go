package app

// SheetInfo describes one sheet for the frontend's sheet selector tabs.
type SheetInfo struct {
	Name        string `json:"name"`
	Index       int    `json:"index"`
	RowCount    int    `json:"rowCount"`
	ColumnCount int    `json:"columnCount"`
	Active      bool   `json:"active"`
}

// WorkbookInfo describes the loaded workbook for the frontend.
type WorkbookInfo struct {
	Name        string      `json:"name"`
	Path        string      `json:"path"`
	Hash        string      `json:"hash"`
	Sheets      []SheetInfo `json:"sheets"`
	ActiveSheet int         `json:"activeSheet"`
	Loaded      bool        `json:"loaded"`
	Error       string      `json:"error,omitempty"`
}

// ColumnInfo carries one column's key, header, alias and selection flag for
// the per-column checkbox and alias input controls.
type ColumnInfo struct {
	Key      string `json:"key"`
	Header   string `json:"header"`
	Alias    string `json:"alias,omitempty"`
	Index    int    `json:"index"`
	Selected bool   `json:"selected"`
}

// PreviewResponse is the live preview table payload: the active sheet's
// columns plus the visible rows capped at the preview limit.
type PreviewResponse struct {
	SheetName    string       `json:"sheetName"`
	Columns      []ColumnInfo `json:"columns"`
	Rows         [][]string   `json:"rows"`
	TotalVisible int          `json:"totalVisible"`
	Truncated    bool         `json:"truncated"`
	SearchTerm   string       `json:"searchTerm"`
	Error        string       `json:"error,omitempty"`
}

// ExportResult reports the outcome of an export trigger.
type ExportResult struct {
	Path        string `json:"path,omitempty"`
	RowsWritten int    `json:"rowsWritten"`
	Cancelled   bool   `json:"cancelled,omitempty"`
	Error       string `json:"error,omitempty"`
}

// CopyResult reports the number of data rows copied to the clipboard.
type CopyResult struct {
	RowsCopied int    `json:"rowsCopied"`
	Error      string `json:"error,omitempty"`
}
