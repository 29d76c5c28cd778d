package model

import "time"

// Theme is the visual theme of the dashboard.
type Theme string

// Supported themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// PreferenceKeyTheme is the key under which the theme flag is persisted.
const PreferenceKeyTheme = "theme"

// ParseTheme converts a stored value into a Theme.
// The boolean is false when the value is not a recognised theme.
func ParseTheme(value string) (Theme, bool) {
	switch Theme(value) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	default:
		return ThemeLight, false
	}
}

// IsDark reports whether the theme is the dark one.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t.IsDark() {
		return ThemeLight
	}
	return ThemeDark
}

// Preference represents a persisted key-value entry for a client.
type Preference struct {
	ClientID  string
	Key       string
	Value     string
	UpdatedAt time.Time
}
