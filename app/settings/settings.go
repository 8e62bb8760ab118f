package settings

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GetEffectiveSettings returns the effective settings (defaults overlaid with
// file overrides if any). If anything goes wrong, it returns defaults.
func GetEffectiveSettings() Settings {
	settings := defaultSettings
	path, err := settingsFilePath()
	if err != nil {
		return settings
	}
	if _, err := os.Stat(path); err != nil {
		// no file or other stat error -> return defaults
		return settings
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return settings
	}
	// Unmarshal into a generic map to detect key presence
	var m map[string]any
	if err := yaml.Unmarshal(b, &m); err != nil {
		return settings
	}
	applyOverrides(&settings, m)
	return settings
}

// applyOverrides overlays present, well-typed keys onto settings. Absent keys
// keep their defaults; out-of-range numeric values are ignored.
func applyOverrides(settings *Settings, m map[string]any) {
	if v, ok := m["locale"]; ok {
		if vs, oks := v.(string); oks && vs != "" {
			settings.Locale = vs
		}
	}
	if v, ok := m["column_placeholder_format"]; ok {
		if vs, oks := v.(string); oks && vs != "" {
			settings.ColumnPlaceholderFormat = vs
		}
	}
	if v, ok := m["preview_row_limit"]; ok {
		if vi, oki := v.(int); oki && vi >= 1 {
			settings.PreviewRowLimit = vi
		}
	}
	if v, ok := m["default_export_name"]; ok {
		if vs, oks := v.(string); oks && vs != "" {
			settings.DefaultExportName = vs
		}
	}
	if v, ok := m["export_sheet_label"]; ok {
		if vs, oks := v.(string); oks && vs != "" {
			settings.ExportSheetLabel = vs
		}
	}
	if v, ok := m["window_width"]; ok {
		if vi, oki := v.(int); oki && vi >= 400 {
			settings.WindowWidth = vi
		}
	}
	if v, ok := m["window_height"]; ok {
		if vi, oki := v.(int); oki && vi >= 300 {
			settings.WindowHeight = vi
		}
	}
}

func settingsFilePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(exe)
	return filepath.Join(dir, "sheetlens.yml"), nil
}
