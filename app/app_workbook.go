package app

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"sheetlens/app/loader"
)

// Workbook load/session methods for App

// msgParseFailure is the user-visible message for a failed workbook read.
const msgParseFailure = "Could not read the workbook. Check that the file is a valid spreadsheet and try again."

// OpenWorkbookDialog opens a file dialog restricted to spreadsheet files and
// loads the selected workbook. Returns a nil info when the user cancels.
func (a *App) OpenWorkbookDialog() (*WorkbookInfo, error) {
	if a.ctx == nil {
		return nil, fmt.Errorf("app context not initialised")
	}
	path, err := runtime.OpenFileDialog(a.ctx, runtime.OpenDialogOptions{
		Title: "Open Workbook",
		Filters: []runtime.FileFilter{
			{DisplayName: "Spreadsheet Files", Pattern: loader.DialogPattern()},
		},
	})
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil // user cancelled
	}
	return a.OpenWorkbook(path)
}

// OpenWorkbook parses the workbook at path and replaces the session's
// workbook wholesale. Parsing is the session's one asynchronous boundary: no
// state is touched until the parse completes. On parse failure the previous
// workbook stays loaded and the transient error message is set.
//
// Overlapping loads are guarded with a per-load token: when a second file is
// selected while an earlier parse is still running, the earlier result is
// discarded once it arrives.
func (a *App) OpenWorkbook(path string) (*WorkbookInfo, error) {
	if path == "" {
		return nil, fmt.Errorf("file path is empty")
	}

	if !loader.HasSpreadsheetExt(path) {
		a.Log("warn", fmt.Sprintf("Opening %s: unrecognized spreadsheet suffix", path))
	}

	token := uuid.NewString()
	a.mu.Lock()
	a.loadToken = token
	a.mu.Unlock()

	workbook, parseErr := loader.ParseWorkbook(path, a.policy)

	hash := ""
	if parseErr == nil {
		h, err := loader.HashWorkbookFile(path)
		if err != nil {
			// Reload detection won't work for this file but everything else will
			a.Log("warn", fmt.Sprintf("Failed to hash workbook file: %v", err))
		} else {
			hash = h
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.loadToken != token {
		a.Log("info", fmt.Sprintf("Discarding stale load of %s: a newer load started", path))
		return nil, nil
	}
	if parseErr != nil {
		a.setErrorLocked(msgParseFailure)
		a.Log("error", fmt.Sprintf("Failed to parse workbook %s: %v", path, parseErr))
		return a.workbookInfoLocked(), nil
	}

	reloaded := hash != "" && hash == a.workbookHash
	a.store.SetWorkbook(workbook.Name, workbook.Sheets)
	a.workbookPath = path
	a.workbookHash = hash
	a.clearErrorLocked()

	if reloaded {
		a.Log("info", fmt.Sprintf("Reloaded unchanged workbook %s (%d sheets)", path, len(workbook.Sheets)))
	} else {
		a.Log("info", fmt.Sprintf("Loaded workbook %s (%d sheets)", path, len(workbook.Sheets)))
	}
	runtime.EventsEmit(a.ctx, "workbook:loaded", a.workbookInfoLocked())
	return a.workbookInfoLocked(), nil
}

// GetWorkbookInfo returns the current workbook metadata for the frontend.
func (a *App) GetWorkbookInfo() *WorkbookInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.workbookInfoLocked()
}

// SetActiveSheet switches the active sheet and returns the refreshed preview.
// An out-of-range index leaves the session unchanged.
func (a *App) SetActiveSheet(index int) *PreviewResponse {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.store.SetActiveSheetIndex(index)
	a.clearErrorLocked()
	return a.previewLocked()
}

// ResetSession clears the workbook and every view/export option back to the
// empty session.
func (a *App) ResetSession() *WorkbookInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.store.Reset()
	a.workbookPath = ""
	a.workbookHash = ""
	a.clearErrorLocked()
	return a.workbookInfoLocked()
}

// workbookInfoLocked builds the workbook payload. Callers hold mu.
func (a *App) workbookInfoLocked() *WorkbookInfo {
	snap := a.store.Snapshot()
	info := &WorkbookInfo{
		Name:        snap.WorkbookName,
		Path:        a.workbookPath,
		Hash:        a.workbookHash,
		ActiveSheet: snap.ActiveIndex,
		Loaded:      len(snap.Sheets) > 0,
		Error:       a.lastError,
	}
	for i, sheet := range snap.Sheets {
		info.Sheets = append(info.Sheets, SheetInfo{
			Name:        sheet.Name,
			Index:       i,
			RowCount:    len(sheet.Rows),
			ColumnCount: len(sheet.Headers),
			Active:      i == snap.ActiveIndex,
		})
	}
	return info
}
