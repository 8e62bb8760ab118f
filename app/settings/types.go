package settings

// Settings holds user-adjustable application settings. Workbook data is never
// persisted; only presentation and export preferences live here.
type Settings struct {
	// Locale is the BCP-47 tag driving case folding, normalization and the
	// placeholder names synthesized for blank column headers.
	Locale string `yaml:"locale" json:"locale"`
	// ColumnPlaceholderFormat is the fmt pattern for synthesized headers;
	// it must contain one %d verb for the 1-based column position.
	ColumnPlaceholderFormat string `yaml:"column_placeholder_format" json:"column_placeholder_format"`
	// PreviewRowLimit caps the rows shown in the live preview table.
	PreviewRowLimit int `yaml:"preview_row_limit" json:"preview_row_limit"`
	// DefaultExportName prefills the export filename field.
	DefaultExportName string `yaml:"default_export_name" json:"default_export_name"`
	// ExportSheetLabel names the single sheet of exported workbooks.
	ExportSheetLabel string `yaml:"export_sheet_label" json:"export_sheet_label"`
	// Window size settings (not visible in the settings dialog, but persisted)
	WindowWidth  int `yaml:"window_width,omitempty" json:"window_width,omitempty"`
	WindowHeight int `yaml:"window_height,omitempty" json:"window_height,omitempty"`
}

// defaultSettings defines the built-in defaults.
var defaultSettings = Settings{
	Locale:                  "en",
	ColumnPlaceholderFormat: "Column %d",
	PreviewRowLimit:         8,
	DefaultExportName:       "export.xlsx",
	ExportSheetLabel:        "Export",
	WindowWidth:             1024,
	WindowHeight:            768,
}
