package settings

import (
	"testing"
)

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
		check     func(t *testing.T, s Settings)
	}{
		{
			name:      "no overrides keeps defaults",
			overrides: map[string]any{},
			check: func(t *testing.T, s Settings) {
				if s != defaultSettings {
					t.Errorf("settings changed without overrides: %+v", s)
				}
			},
		},
		{
			name: "locale and preview limit",
			overrides: map[string]any{
				"locale":            "fa",
				"preview_row_limit": 20,
			},
			check: func(t *testing.T, s Settings) {
				if s.Locale != "fa" || s.PreviewRowLimit != 20 {
					t.Errorf("overrides not applied: %+v", s)
				}
			},
		},
		{
			name: "wrong types are ignored",
			overrides: map[string]any{
				"locale":            7,
				"preview_row_limit": "many",
			},
			check: func(t *testing.T, s Settings) {
				if s.Locale != "en" || s.PreviewRowLimit != 8 {
					t.Errorf("ill-typed overrides applied: %+v", s)
				}
			},
		},
		{
			name: "out-of-range values are ignored",
			overrides: map[string]any{
				"preview_row_limit": 0,
				"window_width":      10,
				"window_height":     10,
			},
			check: func(t *testing.T, s Settings) {
				if s.PreviewRowLimit != 8 || s.WindowWidth != 1024 || s.WindowHeight != 768 {
					t.Errorf("out-of-range overrides applied: %+v", s)
				}
			},
		},
		{
			name: "export preferences",
			overrides: map[string]any{
				"default_export_name": "filtered",
				"export_sheet_label":  "Data",
			},
			check: func(t *testing.T, s Settings) {
				if s.DefaultExportName != "filtered" || s.ExportSheetLabel != "Data" {
					t.Errorf("export overrides not applied: %+v", s)
				}
			},
		},
		{
			name: "empty strings keep defaults",
			overrides: map[string]any{
				"locale":             "",
				"export_sheet_label": "",
			},
			check: func(t *testing.T, s Settings) {
				if s.Locale != "en" || s.ExportSheetLabel != "Export" {
					t.Errorf("empty overrides applied: %+v", s)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := defaultSettings
			applyOverrides(&s, tt.overrides)
			tt.check(t, s)
		})
	}
}
