package app

import (
	"fmt"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/runtime"
	clipboard "golang.design/x/clipboard"

	"sheetlens/app/exporter"
	"sheetlens/app/projection"
	"sheetlens/app/session"
)

// Export and clipboard methods for App

const (
	// msgNothingToExport is surfaced when the export matrix is empty.
	msgNothingToExport = "Nothing to export. Select at least one column and make sure the sheet has data."
	// msgWriteFailure is surfaced when the workbook writer fails.
	msgWriteFailure = "Could not write the export file. Please try again."
)

// Maximum clipboard size in bytes (10MB) - helps avoid X11 BadLength errors on Linux
const maxClipboardSize = 10 * 1024 * 1024

// ExportWorkbook builds the export row matrix from the current session state
// (selected columns, aliases applied, search filter applied) and writes it to
// a location chosen in a save dialog. The user-supplied filename prefills the
// dialog; a missing spreadsheet suffix is appended. The export busy state is
// mirrored to the frontend over the "export:busy" event.
func (a *App) ExportWorkbook(filename string) (*ExportResult, error) {
	if a.ctx == nil {
		return nil, fmt.Errorf("app context not initialised")
	}

	a.mu.Lock()
	if a.exporting {
		a.mu.Unlock()
		return &ExportResult{Error: "An export is already in progress."}, nil
	}
	a.exporting = true
	snap := a.store.Snapshot()
	label := a.exportSheetLabel
	defaultName := a.defaultExportName
	a.mu.Unlock()

	runtime.EventsEmit(a.ctx, "export:busy", true)
	defer func() {
		a.mu.Lock()
		a.exporting = false
		a.mu.Unlock()
		runtime.EventsEmit(a.ctx, "export:busy", false)
	}()

	// Empty matrix check happens before the writer is ever invoked.
	matrix := projection.ExportMatrix(snap, a.policy)
	if len(matrix) == 0 {
		a.mu.Lock()
		a.setErrorLocked(msgNothingToExport)
		a.mu.Unlock()
		return &ExportResult{Error: msgNothingToExport}, nil
	}

	name := strings.TrimSpace(filename)
	if name == "" {
		name = defaultName
	}
	name = exporter.EnsureSuffix(name)

	path, err := runtime.SaveFileDialog(a.ctx, runtime.SaveDialogOptions{
		Title:           "Export Workbook",
		DefaultFilename: name,
		Filters: []runtime.FileFilter{
			{DisplayName: "Excel Workbook", Pattern: "*.xlsx"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open save dialog: %w", err)
	}
	if path == "" {
		return &ExportResult{Cancelled: true}, nil // user cancelled
	}
	path = exporter.EnsureSuffix(path)

	if err := exporter.WriteMatrix(path, label, matrix); err != nil {
		a.mu.Lock()
		a.setErrorLocked(msgWriteFailure)
		a.mu.Unlock()
		a.Log("error", fmt.Sprintf("Failed to write export file %s: %v", path, err))
		return &ExportResult{Error: msgWriteFailure}, nil
	}

	a.mu.Lock()
	a.clearErrorLocked()
	a.mu.Unlock()
	rows := len(matrix) - 1
	a.Log("info", fmt.Sprintf("Exported %d rows to %s", rows, path))
	return &ExportResult{Path: path, RowsWritten: rows}, nil
}

// CopyVisibleToClipboard copies the export row matrix (header plus visible,
// selected cells) to the system clipboard as tab-separated text.
func (a *App) CopyVisibleToClipboard() (*CopyResult, error) {
	a.mu.Lock()
	snap := a.store.Snapshot()
	a.mu.Unlock()

	matrix := projection.ExportMatrix(snap, a.policy)
	if len(matrix) == 0 {
		a.mu.Lock()
		a.setErrorLocked(msgNothingToExport)
		a.mu.Unlock()
		return &CopyResult{Error: msgNothingToExport}, nil
	}

	// Lazy init clipboard
	a.clipOnce.Do(func() {
		if err := clipboard.Init(); err == nil {
			a.clipOK = true
		} else {
			a.clipOK = false
			a.Log("error", fmt.Sprintf("Clipboard init failed: %v", err))
		}
	})
	if !a.clipOK {
		return &CopyResult{Error: "Clipboard is not available."}, nil
	}

	if err := safeClipboardWrite(clipboard.FmtText, []byte(matrixTSV(matrix))); err != nil {
		a.Log("error", fmt.Sprintf("Clipboard write failed: %v", err))
		return &CopyResult{Error: "Failed to copy rows to clipboard."}, nil
	}

	a.mu.Lock()
	a.clearErrorLocked()
	a.mu.Unlock()
	rows := len(matrix) - 1
	a.Log("info", fmt.Sprintf("Copied %d rows to clipboard", rows))
	return &CopyResult{RowsCopied: rows}, nil
}

// matrixTSV renders the matrix as tab-separated text, one line per row.
func matrixTSV(matrix [][]session.Cell) string {
	var sb strings.Builder
	for _, row := range matrix {
		for i, cell := range row {
			if i > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(projection.CellString(cell))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// safeClipboardWrite attempts to write data to clipboard with panic recovery.
// Returns an error if the write fails or data is too large.
func safeClipboardWrite(format clipboard.Format, data []byte) (err error) {
	if len(data) > maxClipboardSize {
		return fmt.Errorf("data too large for clipboard (%d bytes, max %d bytes). Try filtering to fewer rows",
			len(data), maxClipboardSize)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("clipboard write failed: %v", r)
		}
	}()
	clipboard.Write(format, data)
	return nil
}
