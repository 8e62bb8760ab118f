package textpolicy

import (
	"strings"
	"testing"
)

func TestPlaceholder(t *testing.T) {
	p := Default()
	if got := p.Placeholder(2); got != "Column 2" {
		t.Errorf("Placeholder(2) = %q, want %q", got, "Column 2")
	}
}

func TestForLocaleFallback(t *testing.T) {
	p := ForLocale("not a locale", "")
	if got := p.Locale(); got != "en" {
		t.Errorf("unparseable locale should fall back to en, got %q", got)
	}
	if got := p.Placeholder(1); got != "Column 1" {
		t.Errorf("empty format should keep default, got %q", got)
	}
}

func TestForLocaleCustomFormat(t *testing.T) {
	p := ForLocale("fa", "ستون %d")
	if got := p.Placeholder(3); got != "ستون 3" {
		t.Errorf("Placeholder(3) = %q", got)
	}
}

func TestFold(t *testing.T) {
	p := Default()
	tests := []struct {
		name     string
		haystack string
		needle   string
		match    bool
	}{
		{"case insensitive", "Ali", "ali", true},
		{"uppercase needle", "reza", "REZA", true},
		{"accent decomposition", "Café", "cafe", true},
		{"precomposed needle", "Café", "café", true},
		{"substring only", "Alicia", "lic", true},
		{"no match", "Ali", "xyz", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Contains(p.Fold(tt.haystack), p.Fold(tt.needle))
			if got != tt.match {
				t.Errorf("Contains(Fold(%q), Fold(%q)) = %t, want %t", tt.haystack, tt.needle, got, tt.match)
			}
		})
	}
}

func TestFoldTurkishDotlessI(t *testing.T) {
	// Locale-aware lowering: in Turkish, "I" folds to "ı", not "i".
	tr := ForLocale("tr", "")
	if got := tr.Fold("I"); got != "ı" {
		t.Errorf("Turkish fold of I = %q, want ı", got)
	}
	if got := Default().Fold("I"); got != "i" {
		t.Errorf("English fold of I = %q, want i", got)
	}
}
