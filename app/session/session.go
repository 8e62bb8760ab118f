package session

import (
	"sheetlens/app/textpolicy"
)

// Store is the single source of truth for the loaded workbook and all
// view/export configuration: active sheet, column selection, column aliases
// and the search term. All mutation funnels through the named operations
// below; every operation is a total function over the current state and has
// no side effects beyond the in-memory transition.
//
// The store is not internally locked. All access happens on the app's single
// logical UI thread, serialized by the App that owns the store.
type Store struct {
	workbookName string
	sheets       []Sheet
	activeIndex  int
	selected     map[string]bool
	aliases      map[string]string
	searchTerm   string
	policy       textpolicy.Policy
}

// New constructs an empty store using the given text policy for column key
// derivation.
func New(policy textpolicy.Policy) *Store {
	s := &Store{policy: policy}
	s.clear()
	return s
}

// Snapshot is a value copy of the store's composite state, handed to the
// projection layer. Sheets are shared (treated as immutable after load);
// the maps are copied so later mutations cannot leak into a held snapshot.
type Snapshot struct {
	WorkbookName string
	Sheets       []Sheet
	ActiveIndex  int
	Selected     map[string]bool
	Aliases      map[string]string
	SearchTerm   string
}

// Snapshot returns the current composite state.
func (s *Store) Snapshot() Snapshot {
	selected := make(map[string]bool, len(s.selected))
	for k, v := range s.selected {
		selected[k] = v
	}
	aliases := make(map[string]string, len(s.aliases))
	for k, v := range s.aliases {
		aliases[k] = v
	}
	return Snapshot{
		WorkbookName: s.workbookName,
		Sheets:       s.sheets,
		ActiveIndex:  s.activeIndex,
		Selected:     selected,
		Aliases:      aliases,
		SearchTerm:   s.searchTerm,
	}
}

// SetWorkbook replaces the whole workbook, activates sheet 0, selects every
// column of sheet 0, and clears aliases and the search term. The store does
// not validate sheet contents beyond reading their headers; an empty sheet
// list leaves the active sheet resolving to "none" downstream.
func (s *Store) SetWorkbook(name string, sheets []Sheet) {
	s.workbookName = name
	s.sheets = sheets
	s.activeIndex = 0
	s.resetViewState()
}

// SetActiveSheetIndex switches the active sheet. An out-of-range index is a
// no-op. Switching rebuilds the selection map from the new sheet's headers
// (all selected) and clears aliases and the search term — per-column state is
// never preserved across a sheet switch, even when the user switches back to
// a previously configured sheet.
func (s *Store) SetActiveSheetIndex(index int) {
	if index < 0 || index >= len(s.sheets) {
		return
	}
	s.activeIndex = index
	s.resetViewState()
}

// ToggleColumn flips the selection flag for a column key. A key absent from
// the map reads as unselected, so the first toggle of an unknown key selects
// it.
func (s *Store) ToggleColumn(columnKey string) {
	s.selected[columnKey] = !s.selected[columnKey]
}

// SetColumnAlias records a user-supplied header override verbatim. Trimming
// and the blank-alias fallback happen at read/export time.
func (s *Store) SetColumnAlias(columnKey, text string) {
	s.aliases[columnKey] = text
}

// SetSearchTerm replaces the search term verbatim.
func (s *Store) SetSearchTerm(text string) {
	s.searchTerm = text
}

// Reset clears the workbook and all view state back to the empty session.
func (s *Store) Reset() {
	s.clear()
}

// HasWorkbook reports whether a workbook is currently loaded.
func (s *Store) HasWorkbook() bool {
	return len(s.sheets) > 0
}

func (s *Store) clear() {
	s.workbookName = ""
	s.sheets = nil
	s.activeIndex = -1
	s.selected = make(map[string]bool)
	s.aliases = make(map[string]string)
	s.searchTerm = ""
}

// resetViewState rebuilds the selection map for the active sheet's current
// headers (everything selected) and drops aliases and the search term.
func (s *Store) resetViewState() {
	s.selected = make(map[string]bool)
	s.aliases = make(map[string]string)
	s.searchTerm = ""
	if s.activeIndex < 0 || s.activeIndex >= len(s.sheets) {
		return
	}
	for _, key := range ColumnKeys(s.sheets[s.activeIndex].Headers, s.policy) {
		s.selected[key] = true
	}
}
