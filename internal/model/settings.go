package model

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Theme selects the CLI color palette.
type Theme string

const (
	// ThemeStandard is the default palette.
	ThemeStandard Theme = "standard"
	// ThemeDark uses muted colors for dark terminals.
	ThemeDark Theme = "dark"
	// ThemeMint uses a green-leaning palette.
	ThemeMint Theme = "mint"
	// ThemeSunset uses a warm palette.
	ThemeSunset Theme = "sunset"
)

// ValidTheme reports whether t is a known theme.
func ValidTheme(t Theme) bool {
	switch t {
	case ThemeStandard, ThemeDark, ThemeMint, ThemeSunset:
		return true
	}
	return false
}

// Settings holds the user's budget configuration. It is a singleton,
// mutated only through explicit setters and persisted on every mutation.
type Settings struct {
	Name       string
	Theme      Theme
	Categories []string // ordered set, no duplicates
	Budget     decimal.Decimal
	Payday     int // day of month in [1,28]
}

// DefaultCategories is the category set seeded on first run.
var DefaultCategories = []string{
	"Handyabo",
	"Fonds",
	"Eltern",
	"Verpflegung",
	"Frisör",
	"Sparen",
	"Geschenke",
	"Sonstiges",
}

// FallbackCategory is assigned when a transaction arrives without one.
const FallbackCategory = "Sonstiges"

// DefaultSettings is the canonical default constructor, applied once at
// state-load time when no persisted settings exist.
func DefaultSettings() Settings {
	return Settings{
		Budget:     decimal.Zero,
		Payday:     1,
		Theme:      ThemeStandard,
		Categories: slices.Clone(DefaultCategories),
	}
}

// HasCategory reports whether name is in the category set.
func (s *Settings) HasCategory(name string) bool {
	return slices.Contains(s.Categories, name)
}

// AddCategory appends a category, preserving order and rejecting
// duplicates. It reports whether the set changed.
func (s *Settings) AddCategory(name string) bool {
	if s.HasCategory(name) {
		return false
	}
	s.Categories = append(s.Categories, name)
	return true
}

// RemoveCategory drops a category from the set. Existing transactions keep
// their category label; removal never cascades.
func (s *Settings) RemoveCategory(name string) bool {
	i := slices.Index(s.Categories, name)
	if i < 0 {
		return false
	}
	s.Categories = slices.Delete(s.Categories, i, i+1)
	return true
}

// RenameCategory replaces a label in place. Existing transactions keep the
// old label.
func (s *Settings) RenameCategory(from, to string) bool {
	i := slices.Index(s.Categories, from)
	if i < 0 || s.HasCategory(to) {
		return false
	}
	s.Categories[i] = to
	return true
}
