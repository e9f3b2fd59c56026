package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidTheme is returned when a raw value is neither "light" nor "dark".
var ErrInvalidTheme = errors.New("invalid theme")

// Theme is the active visual mode of a document.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultPreferenceKey is the persistent key the stored preference lives under.
const DefaultPreferenceKey = "theme"

// ParseTheme validates a raw stored or attribute value.
// Only the exact literals "light" and "dark" are accepted; no trimming or case folding.
func ParseTheme(raw string) (Theme, error) {
	switch Theme(raw) {
	case ThemeLight, ThemeDark:
		return Theme(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, raw)
	}
}

// ThemeFromPrefersDark maps a system "prefers dark" signal to a theme.
func ThemeFromPrefersDark(prefersDark bool) Theme {
	if prefersDark {
		return ThemeDark
	}
	return ThemeLight
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// Opposite returns the theme a toggle switches to.
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Valid reports whether t is one of the two known themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

func (t Theme) String() string {
	return string(t)
}
