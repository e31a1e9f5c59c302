package catalog

import "strings"

// Theme is one named color palette an avatar can be painted with.
type Theme struct {
	ID            string
	AccentColor   string
	GradientStart string
	GradientEnd   string
}

// DefaultTheme paints avatars whose own palette cannot be resolved.
var DefaultTheme = Theme{
	ID:            "default",
	AccentColor:   "#ffffff",
	GradientStart: "#6366f1",
	GradientEnd:   "#312e81",
}

var themes = []Theme{
	{ID: "crimson", AccentColor: "#fff1f2", GradientStart: "#ef4444", GradientEnd: "#7f1d1d"},
	{ID: "ember", AccentColor: "#fff7ed", GradientStart: "#f97316", GradientEnd: "#9a3412"},
	{ID: "amber", AccentColor: "#451a03", GradientStart: "#fbbf24", GradientEnd: "#d97706"},
	{ID: "emerald", AccentColor: "#ecfdf5", GradientStart: "#10b981", GradientEnd: "#064e3b"},
	{ID: "teal", AccentColor: "#f0fdfa", GradientStart: "#14b8a6", GradientEnd: "#134e4a"},
	{ID: "ocean", AccentColor: "#eff6ff", GradientStart: "#3b82f6", GradientEnd: "#1e3a8a"},
	{ID: "violet", AccentColor: "#f5f3ff", GradientStart: "#8b5cf6", GradientEnd: "#4c1d95"},
	{ID: "rose", AccentColor: "#fdf2f8", GradientStart: "#ec4899", GradientEnd: "#831843"},
	{ID: "slate", AccentColor: "#38bdf8", GradientStart: "#334155", GradientEnd: "#0f172a"},
}

// Themes returns a copy of the theme table in its canonical order.
func Themes() []Theme {
	result := make([]Theme, len(themes))
	copy(result, themes)
	return result
}

// ThemeByID returns the theme with the given id.
func ThemeByID(id string) (Theme, bool) {
	id = strings.TrimSpace(id)
	for _, theme := range themes {
		if theme.ID == id {
			return theme, true
		}
	}
	return Theme{}, false
}

// ThemeForAvatarID re-derives a theme from the suffix of an avatar id.
//
// Ids whose suffix names no known theme get DefaultTheme and false.
func ThemeForAvatarID(avatarID string) (Theme, bool) {
	idx := strings.LastIndex(avatarID, idSeparator)
	if idx < 0 {
		return DefaultTheme, false
	}
	theme, ok := ThemeByID(avatarID[idx+len(idSeparator):])
	if !ok {
		return DefaultTheme, false
	}
	return theme, true
}
