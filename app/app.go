package app

import (
	"context"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"sheetlens/app/session"
	"sheetlens/app/settings"
	"sheetlens/app/textpolicy"
)

// App struct
type App struct {
	ctx context.Context

	// Session state. The store is the sole mutator target; mu serializes the
	// Wails-bound methods so store access stays single-threaded.
	mu    sync.Mutex
	store *session.Store

	policy textpolicy.Policy

	// Identity of the currently loaded workbook file
	workbookPath string
	workbookHash string

	// Token of the most recent load; a parse that finishes under an older
	// token is discarded instead of clobbering the newer load.
	loadToken string

	// Export busy flag for the frontend's disabled state
	exporting bool

	// Transient user-visible error message, cleared on the next successful
	// action
	lastError string

	// Settings applied at startup (re-applied via ReloadSettings)
	previewRowLimit   int
	defaultExportName string
	exportSheetLabel  string

	// clipboard init
	clipOnce sync.Once
	clipOK   bool
}

// NewApp creates a new App application struct
func NewApp() *App {
	a := &App{}
	a.applySettings(settings.GetEffectiveSettings())
	a.store = session.New(a.policy)
	return a
}

// Startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
}

// Ctx returns the app context
func (a *App) Ctx() context.Context {
	return a.ctx
}

// ReloadSettings re-reads the settings file and applies the locale, preview
// and export preferences. Called by the frontend after the settings dialog
// saves. The column selection of a loaded workbook is keyed by placeholder
// text, so a locale change resets the session.
func (a *App) ReloadSettings() {
	a.mu.Lock()
	defer a.mu.Unlock()
	previous := a.policy
	a.applySettings(settings.GetEffectiveSettings())
	if a.policy != previous {
		a.store = session.New(a.policy)
		a.workbookPath = ""
		a.workbookHash = ""
		a.lastError = ""
	}
}

func (a *App) applySettings(s settings.Settings) {
	a.policy = textpolicy.ForLocale(s.Locale, s.ColumnPlaceholderFormat)
	a.previewRowLimit = s.PreviewRowLimit
	a.defaultExportName = s.DefaultExportName
	a.exportSheetLabel = s.ExportSheetLabel
}

// GetSavedWindowSize returns the persisted window dimensions, falling back to
// defaults when no settings file exists.
func (a *App) GetSavedWindowSize() (int, int, error) {
	s := settings.GetEffectiveSettings()
	return s.WindowWidth, s.WindowHeight, nil
}

// Log emits a structured log event to the frontend console window
func (a *App) Log(level, message string) {
	if a == nil || a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, "log", map[string]any{
		"level":   level,
		"message": message,
	})
}

// setErrorLocked records the transient user-visible message. Callers hold mu.
func (a *App) setErrorLocked(message string) {
	a.lastError = message
}

// clearErrorLocked drops the transient message after a successful action.
// Callers hold mu.
func (a *App) clearErrorLocked() {
	a.lastError = ""
}
