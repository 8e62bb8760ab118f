package textpolicy

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Package textpolicy isolates every locale-dependent string operation used by
// the session and projection layers: search-term normalization, case folding,
// and the placeholder names synthesized for blank column headers. Keeping this
// behind one policy value means the core stays testable regardless of the
// presentation language.

// Policy holds the locale configuration for text matching and placeholders.
// The zero value is not usable; construct one with Default or ForLocale.
type Policy struct {
	tag               language.Tag
	placeholderFormat string
}

// Default returns the English policy with "Column N" placeholders.
func Default() Policy {
	return Policy{tag: language.English, placeholderFormat: "Column %d"}
}

// ForLocale builds a policy for a BCP-47 locale string. An unparseable locale
// falls back to English. An empty placeholderFormat keeps the default.
func ForLocale(locale string, placeholderFormat string) Policy {
	p := Default()
	if tag, err := language.Parse(locale); err == nil {
		p.tag = tag
	}
	if placeholderFormat != "" {
		p.placeholderFormat = placeholderFormat
	}
	return p
}

// Locale returns the policy's BCP-47 locale string.
func (p Policy) Locale() string {
	return p.tag.String()
}

// Placeholder returns the synthesized header for a blank column at the given
// 1-based position, e.g. "Column 2".
func (p Policy) Placeholder(position int) string {
	return fmt.Sprintf(p.placeholderFormat, position)
}

// Fold normalizes a string for search comparison: locale-aware lowercasing
// followed by Unicode canonical decomposition. Two strings match when one
// folded form contains the other as a substring.
func (p Policy) Fold(s string) string {
	lowered := cases.Lower(p.tag).String(s)
	return norm.NFD.String(lowered)
}
