package session

import (
	"reflect"
	"testing"

	"sheetlens/app/textpolicy"
)

func twoSheetStore() *Store {
	s := New(textpolicy.Default())
	s.SetWorkbook("book", []Sheet{
		{
			Name:    "First",
			Headers: []string{"Name", "Score"},
			Rows:    [][]Cell{{"Ali", float64(5)}},
		},
		{
			Name:    "Second",
			Headers: []string{"City"},
			Rows:    [][]Cell{{"Tehran"}},
		},
	})
	return s
}

func TestSetWorkbookDefaults(t *testing.T) {
	s := twoSheetStore()
	snap := s.Snapshot()

	if snap.ActiveIndex != 0 {
		t.Errorf("active index = %d, want 0", snap.ActiveIndex)
	}
	want := map[string]bool{"Name::0": true, "Score::1": true}
	if !reflect.DeepEqual(snap.Selected, want) {
		t.Errorf("selection map = %v, want %v", snap.Selected, want)
	}
	if len(snap.Aliases) != 0 || snap.SearchTerm != "" {
		t.Errorf("aliases/search not cleared: %v %q", snap.Aliases, snap.SearchTerm)
	}
}

func TestSheetSwitchResetsViewState(t *testing.T) {
	s := twoSheetStore()

	// Customize sheet 0, leave, and come back.
	s.ToggleColumn("Score::1")
	s.SetColumnAlias("Name::0", "Full Name")
	s.SetSearchTerm("ali")
	s.SetActiveSheetIndex(1)
	s.SetActiveSheetIndex(0)

	snap := s.Snapshot()
	want := map[string]bool{"Name::0": true, "Score::1": true}
	if !reflect.DeepEqual(snap.Selected, want) {
		t.Errorf("selection not reset on return to sheet: %v", snap.Selected)
	}
	if len(snap.Aliases) != 0 {
		t.Errorf("aliases not reset on return to sheet: %v", snap.Aliases)
	}
	if snap.SearchTerm != "" {
		t.Errorf("search term not reset on return to sheet: %q", snap.SearchTerm)
	}
}

func TestSetActiveSheetIndexOutOfRange(t *testing.T) {
	s := twoSheetStore()
	s.SetColumnAlias("Name::0", "kept")
	s.SetSearchTerm("kept")

	before := s.Snapshot()
	s.SetActiveSheetIndex(-1)
	s.SetActiveSheetIndex(2)
	after := s.Snapshot()

	if !reflect.DeepEqual(before, after) {
		t.Errorf("out-of-range switch mutated state: %+v != %+v", before, after)
	}
}

func TestToggleColumnIdempotence(t *testing.T) {
	s := twoSheetStore()
	before := s.Snapshot().Selected["Name::0"]
	s.ToggleColumn("Name::0")
	s.ToggleColumn("Name::0")
	if got := s.Snapshot().Selected["Name::0"]; got != before {
		t.Errorf("double toggle changed selection: %t -> %t", before, got)
	}
}

func TestToggleUnknownKeySelects(t *testing.T) {
	s := twoSheetStore()
	s.ToggleColumn("Ghost::9")
	if !s.Snapshot().Selected["Ghost::9"] {
		t.Error("first toggle of an unknown key should select it")
	}
}

func TestAliasStoredVerbatim(t *testing.T) {
	s := twoSheetStore()
	s.SetColumnAlias("Name::0", "  padded  ")
	if got := s.Snapshot().Aliases["Name::0"]; got != "  padded  " {
		t.Errorf("alias not stored verbatim: %q", got)
	}
}

func TestReset(t *testing.T) {
	s := twoSheetStore()
	s.SetSearchTerm("ali")
	s.Reset()

	snap := s.Snapshot()
	if snap.WorkbookName != "" || len(snap.Sheets) != 0 || s.HasWorkbook() {
		t.Errorf("workbook not cleared: %+v", snap)
	}
	if len(snap.Selected) != 0 || len(snap.Aliases) != 0 || snap.SearchTerm != "" {
		t.Errorf("view state not cleared: %+v", snap)
	}
}

func TestSetWorkbookEmptySheets(t *testing.T) {
	s := New(textpolicy.Default())
	s.SetWorkbook("empty", nil)

	snap := s.Snapshot()
	if s.HasWorkbook() {
		t.Error("workbook without sheets should not count as loaded")
	}
	if len(snap.Selected) != 0 {
		t.Errorf("selection map should be empty, got %v", snap.Selected)
	}
}

func TestColumnKeyPlaceholders(t *testing.T) {
	policy := textpolicy.Default()
	tests := []struct {
		header string
		index  int
		want   string
	}{
		{"Name", 0, "Name::0"},
		{" Name ", 0, "Name::0"},
		{"", 1, "Column 2::1"},
		{"   ", 3, "Column 4::3"},
	}
	for _, tt := range tests {
		if got := ColumnKey(tt.header, tt.index, policy); got != tt.want {
			t.Errorf("ColumnKey(%q, %d) = %q, want %q", tt.header, tt.index, got, tt.want)
		}
	}
}

func TestColumnKeysDistinct(t *testing.T) {
	// Duplicate headers still yield distinct keys via the positional suffix.
	keys := ColumnKeys([]string{"X", "X", ""}, textpolicy.Default())
	seen := map[string]bool{}
	for _, k := range keys {
		if seen[k] {
			t.Errorf("duplicate column key %q", k)
		}
		seen[k] = true
	}
}
