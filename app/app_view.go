package app

import (
	"sheetlens/app/projection"
	"sheetlens/app/session"
)

// Column selection, alias and search methods for App. Every mutation returns
// the refreshed preview so the frontend can re-render from one payload.

// ToggleColumn flips the include/exclude flag for a column key.
func (a *App) ToggleColumn(columnKey string) *PreviewResponse {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.store.ToggleColumn(columnKey)
	a.clearErrorLocked()
	return a.previewLocked()
}

// SetColumnAlias records a header override for a column key. A blank alias
// falls back to the original header at preview/export time.
func (a *App) SetColumnAlias(columnKey, alias string) *PreviewResponse {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.store.SetColumnAlias(columnKey, alias)
	a.clearErrorLocked()
	return a.previewLocked()
}

// SetSearchTerm replaces the free-text filter applied to the active sheet's
// rows.
func (a *App) SetSearchTerm(term string) *PreviewResponse {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.store.SetSearchTerm(term)
	a.clearErrorLocked()
	return a.previewLocked()
}

// GetPreview derives the current preview table from the session state.
func (a *App) GetPreview() *PreviewResponse {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.previewLocked()
}

// previewLocked recomputes the preview projection. Callers hold mu.
func (a *App) previewLocked() *PreviewResponse {
	snap := a.store.Snapshot()
	resp := &PreviewResponse{
		SearchTerm: snap.SearchTerm,
		Error:      a.lastError,
	}
	sheet, ok := projection.ActiveSheet(snap)
	if !ok {
		return resp
	}
	resp.SheetName = sheet.Name

	keys := session.ColumnKeys(sheet.Headers, a.policy)
	resp.Columns = make([]ColumnInfo, len(keys))
	for i, key := range keys {
		resp.Columns[i] = ColumnInfo{
			Key:      key,
			Header:   sheet.Headers[i],
			Alias:    snap.Aliases[key],
			Index:    i,
			Selected: snap.Selected[key],
		}
	}

	visible := projection.VisibleRows(snap, a.policy)
	resp.TotalVisible = len(visible)
	limit := a.previewRowLimit
	if limit < 1 {
		limit = 1
	}
	for _, row := range visible {
		if len(resp.Rows) == limit {
			break
		}
		out := make([]string, len(sheet.Headers))
		for c := range sheet.Headers {
			if c < len(row) {
				out[c] = projection.CellString(row[c])
			}
		}
		resp.Rows = append(resp.Rows, out)
	}
	resp.Truncated = resp.TotalVisible > limit
	return resp
}
