package icons

import (
	"strings"
)

// Glyph describes one symbolic icon available to the avatar catalog.
type Glyph struct {
	// Name is the Lucide icon name the glyph is drawn after.
	Name string
	// Label is the short human word shown in pickers and used in avatar ids.
	Label string
}

// Ref returns the opaque symbol reference for the glyph.
func (g Glyph) Ref() string {
	return LucideSymbolID(g.Name)
}

// Path returns the glyph's 24x24 stroke geometry.
func (g Glyph) Path() string {
	return LucidePathOrDefault(g.Name)
}

var glyphs = []Glyph{
	{Name: "gamepad-2", Label: "Gamer"},
	{Name: "swords", Label: "Ninja"},
	{Name: "bot", Label: "Robot"},
	{Name: "ghost", Label: "Ghost"},
	{Name: "skull", Label: "Skull"},
	{Name: "crown", Label: "Crown"},
	{Name: "rocket", Label: "Rocket"},
	{Name: "sword", Label: "Sword"},
	{Name: "shield", Label: "Shield"},
	{Name: "flame", Label: "Flame"},
	{Name: "zap", Label: "Bolt"},
	{Name: "star", Label: "Star"},
	{Name: "heart", Label: "Heart"},
	{Name: "gem", Label: "Diamond"},
	{Name: "moon", Label: "Moon"},
	{Name: "sun", Label: "Sun"},
	{Name: "cloud", Label: "Cloud"},
	{Name: "leaf", Label: "Leaf"},
	{Name: "paw-print", Label: "Paw"},
	{Name: "cat", Label: "Cat"},
	{Name: "dog", Label: "Dog"},
	{Name: "bird", Label: "Bird"},
	{Name: "fish", Label: "Fish"},
	{Name: "bug", Label: "Bug"},
	{Name: "orbit", Label: "Orbit"},
	{Name: "anchor", Label: "Anchor"},
	{Name: "atom", Label: "Atom"},
	{Name: "axe", Label: "Axe"},
	{Name: "bomb", Label: "Bomb"},
	{Name: "brain", Label: "Brain"},
	{Name: "castle", Label: "Castle"},
	{Name: "compass", Label: "Compass"},
	{Name: "dices", Label: "Dice"},
	{Name: "feather", Label: "Feather"},
	{Name: "flag", Label: "Flag"},
	{Name: "globe", Label: "Globe"},
	{Name: "headphones", Label: "Headset"},
	{Name: "key", Label: "Key"},
	{Name: "mountain", Label: "Mountain"},
	{Name: "music", Label: "Music"},
	{Name: "puzzle", Label: "Puzzle"},
	{Name: "snowflake", Label: "Snowflake"},
	{Name: "target", Label: "Target"},
	{Name: "tent", Label: "Tent"},
	{Name: "trophy", Label: "Trophy"},
	{Name: "wand", Label: "Wand"},
	{Name: "waves", Label: "Wave"},
	{Name: "eye", Label: "Eye"},
}

// Glyphs returns a copy of the glyph table in its canonical order.
func Glyphs() []Glyph {
	result := make([]Glyph, len(glyphs))
	copy(result, glyphs)
	return result
}

// GlyphByLabel finds a glyph by its label, ignoring case.
func GlyphByLabel(label string) (Glyph, bool) {
	label = strings.TrimSpace(label)
	for _, g := range glyphs {
		if strings.EqualFold(g.Label, label) {
			return g, true
		}
	}
	return Glyph{}, false
}

// CatalogMarkdown renders the glyph table as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Glyph Catalog\n\n")
	builder.WriteString("| Label | Lucide | Symbol |\n")
	builder.WriteString("| --- | --- | --- |\n")
	for _, g := range glyphs {
		builder.WriteString("| ")
		builder.WriteString(g.Label)
		builder.WriteString(" | ")
		builder.WriteString(g.Name)
		builder.WriteString(" | ")
		builder.WriteString(g.Ref())
		builder.WriteString(" |\n")
	}
	return builder.String()
}
