package model

// Theme is the color scheme used to render tasks.
type Theme string

const (
	// ThemeLight is the default theme.
	ThemeLight Theme = "light"
	// ThemeDark is the dark theme.
	ThemeDark Theme = "dark"
)

// Valid returns true if the theme is known.
func (t Theme) Valid() bool { return t == ThemeLight || t == ThemeDark }

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
