package catalog

import (
	"strings"
	"sync"

	"github.com/louisbranch/avatars/internal/platform/icons"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const idSeparator = "-"

// Descriptor describes one renderable avatar: a glyph painted with a theme.
type Descriptor struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	GlyphRef      string `json:"glyph_ref"`
	AccentColor   string `json:"accent_color"`
	GradientStart string `json:"gradient_start"`
	GradientEnd   string `json:"gradient_end"`
}

// Slug lowercases a label for use as an identifier prefix.
func Slug(label string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(label))
}

// AvatarID builds the catalog identifier for a glyph label and theme id.
func AvatarID(label, themeID string) string {
	return Slug(label) + idSeparator + strings.TrimSpace(themeID)
}

// GenerateAvatars returns the cross product of glyphs and themes.
//
// Glyphs form the outer loop and themes the inner loop, so the output order is
// stable for a given pair of tables.
func GenerateAvatars(glyphs []icons.Glyph, themes []Theme) []Descriptor {
	out := make([]Descriptor, 0, len(glyphs)*len(themes))
	for _, glyph := range glyphs {
		for _, theme := range themes {
			out = append(out, Descriptor{
				ID:            AvatarID(glyph.Label, theme.ID),
				Label:         glyph.Label,
				GlyphRef:      glyph.Ref(),
				AccentColor:   theme.AccentColor,
				GradientStart: theme.GradientStart,
				GradientEnd:   theme.GradientEnd,
			})
		}
	}
	return out
}

var builtin = sync.OnceValue(func() *Catalog {
	return New(GenerateAvatars(icons.Glyphs(), Themes()))
})

// Avatars returns the process-wide catalog built from the fixed tables.
//
// The catalog is built once and never mutated, so callers may share it
// across goroutines.
func Avatars() *Catalog {
	return builtin()
}
