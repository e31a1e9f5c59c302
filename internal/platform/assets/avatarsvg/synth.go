package avatarsvg

import (
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"

	"github.com/louisbranch/avatars/internal/platform/assets/catalog"
	"github.com/louisbranch/avatars/internal/platform/icons"
)

const (
	canvasSize = 100
	// Glyphs share a 24-unit box; 56 units centered on the 100-unit canvas.
	glyphTransform = "translate(22 22) scale(2.3333)"
	glyphBox       = "24"

	// MediaType is the SVG media type used in data URIs and HTTP responses.
	MediaType     = "image/svg+xml"
	dataURIPrefix = "data:" + MediaType + ";base64,"
)

// ErrDescriptorNotFound reports synthesis requested for an unknown avatar.
var ErrDescriptorNotFound = errors.New("avatar descriptor not found")

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

var unsafeIDChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// Build assembles the vector document for one descriptor.
func Build(d catalog.Descriptor) Document {
	palette := paletteFor(d)
	scope := unsafeIDChars.ReplaceAllString(d.ID, "_")
	gradientID := "bg-" + scope
	symbolID := "glyph-" + scope

	gradient := Element("linearGradient",
		"id", gradientID,
		"x1", "0", "y1", "0", "x2", "1", "y2", "1",
	).With(
		Element("stop", "offset", "0", "stop-color", palette.GradientStart),
		Element("stop", "offset", "1", "stop-color", palette.GradientEnd),
	)
	symbol := Element("symbol",
		"id", symbolID,
		"viewBox", "0 0 24 24",
	).With(Element("path", "d", glyphPath(d.GlyphRef)))

	title := Node{Tag: "title", Text: d.Label}
	background := Element("rect",
		"width", fmt.Sprint(canvasSize),
		"height", fmt.Sprint(canvasSize),
		"fill", "url(#"+gradientID+")",
	)
	glyph := Element("g",
		"data-glyph", d.GlyphRef,
		"transform", glyphTransform,
		"fill", "none",
		"stroke", palette.AccentColor,
		"stroke-width", "2",
		"stroke-linecap", "round",
		"stroke-linejoin", "round",
	).With(Element("use", "href", "#"+symbolID, "width", glyphBox, "height", glyphBox))

	return Document{
		Size: canvasSize,
		Children: []Node{
			title,
			Element("defs").With(gradient, symbol),
			background,
			glyph,
		},
	}
}

// Markup returns the serialized SVG for a descriptor.
func Markup(d *catalog.Descriptor) ([]byte, error) {
	if d == nil {
		return nil, ErrDescriptorNotFound
	}
	return Build(*d).Bytes(), nil
}

// Synthesize renders a descriptor as a base64 SVG data URI.
func Synthesize(d *catalog.Descriptor) (string, error) {
	markup, err := Markup(d)
	if err != nil {
		return "", err
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(markup), nil
}

// SynthesizeID looks up id in c and synthesizes it.
func SynthesizeID(c *catalog.Catalog, id string) (string, error) {
	d, ok := c.Lookup(id)
	if !ok {
		return "", fmt.Errorf("synthesize %q: %w", id, ErrDescriptorNotFound)
	}
	return Synthesize(&d)
}

// paletteFor validates descriptor colors, re-deriving them from the id's
// theme suffix (or the default theme) when they are unusable.
func paletteFor(d catalog.Descriptor) catalog.Theme {
	palette := catalog.Theme{
		AccentColor:   d.AccentColor,
		GradientStart: d.GradientStart,
		GradientEnd:   d.GradientEnd,
	}
	if validColor(palette.GradientStart) && validColor(palette.GradientEnd) && validColor(palette.AccentColor) {
		return palette
	}
	derived, _ := catalog.ThemeForAvatarID(d.ID)
	if !validColor(palette.GradientStart) || !validColor(palette.GradientEnd) {
		palette.GradientStart = derived.GradientStart
		palette.GradientEnd = derived.GradientEnd
	}
	if !validColor(palette.AccentColor) {
		palette.AccentColor = derived.AccentColor
	}
	return palette
}

func validColor(value string) bool {
	return hexColor.MatchString(value)
}

func glyphPath(ref string) string {
	name, _ := icons.LucideNameFromSymbolID(ref)
	return icons.LucidePathOrDefault(name)
}
