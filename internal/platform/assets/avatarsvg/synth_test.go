package avatarsvg

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/louisbranch/avatars/internal/platform/assets/catalog"
)

func decodeDataURI(t *testing.T, uri string) string {
	t.Helper()
	payload, ok := strings.CutPrefix(uri, "data:image/svg+xml;base64,")
	if !ok {
		t.Fatalf("uri %q lacks svg data prefix", uri)
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return string(raw)
}

func TestSynthesizeID_GamerTeal(t *testing.T) {
	uri, err := SynthesizeID(catalog.Avatars(), "gamer-teal")
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	svg := decodeDataURI(t, uri)
	teal, _ := catalog.ThemeByID("teal")
	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"`,
		`<linearGradient id="bg-gamer-teal"`,
		`stop-color="` + teal.GradientStart + `"`,
		`stop-color="` + teal.GradientEnd + `"`,
		`stroke="` + teal.AccentColor + `"`,
		`data-glyph="lucide-gamepad-2"`,
		`fill="url(#bg-gamer-teal)"`,
		`<symbol id="glyph-gamer-teal" viewBox="0 0 24 24"`,
		`href="#glyph-gamer-teal"`,
		`<title>Gamer</title>`,
	} {
		if !strings.Contains(svg, want) {
			t.Fatalf("svg missing %q:\n%s", want, svg)
		}
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	d, ok := catalog.Avatars().Lookup("flame-ember")
	if !ok {
		t.Fatal("expected flame-ember in catalog")
	}
	a, err := Synthesize(&d)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	b, err := Synthesize(&d)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if a != b {
		t.Fatal("expected byte-identical data URIs")
	}
}

func TestSynthesize_NilDescriptor(t *testing.T) {
	if _, err := Synthesize(nil); !errors.Is(err, ErrDescriptorNotFound) {
		t.Fatalf("expected ErrDescriptorNotFound, got %v", err)
	}
}

func TestSynthesizeID_Unknown(t *testing.T) {
	_, err := SynthesizeID(catalog.Avatars(), "gamer-plaid")
	if !errors.Is(err, ErrDescriptorNotFound) {
		t.Fatalf("expected ErrDescriptorNotFound, got %v", err)
	}
}

func TestSynthesize_InvalidColorsUseThemeSuffix(t *testing.T) {
	d := catalog.Descriptor{ID: "custom-ocean", Label: "Custom", GlyphRef: "lucide-star", GradientStart: "blue", GradientEnd: "", AccentColor: "#fff"}
	svg := decodeDataURI(t, mustSynthesize(t, d))
	ocean, _ := catalog.ThemeByID("ocean")
	if !strings.Contains(svg, ocean.GradientStart) || !strings.Contains(svg, ocean.GradientEnd) {
		t.Fatalf("expected ocean gradient fallback:\n%s", svg)
	}
	if !strings.Contains(svg, `stroke="#fff"`) {
		t.Fatalf("expected valid accent to be kept:\n%s", svg)
	}
}

func TestSynthesize_UnknownThemeUsesDefaultGradient(t *testing.T) {
	d := catalog.Descriptor{ID: "custom-plaid", Label: "Custom", GlyphRef: "lucide-unknown"}
	svg := decodeDataURI(t, mustSynthesize(t, d))
	for _, want := range []string{
		catalog.DefaultTheme.GradientStart,
		catalog.DefaultTheme.GradientEnd,
		`stroke="` + catalog.DefaultTheme.AccentColor + `"`,
	} {
		if !strings.Contains(svg, want) {
			t.Fatalf("svg missing default %q:\n%s", want, svg)
		}
	}
}

func TestSynthesize_EscapesMarkup(t *testing.T) {
	d := catalog.Descriptor{ID: `x"><script>-teal`, Label: "<b>&</b>", GlyphRef: "lucide-star", GradientStart: "#000", GradientEnd: "#111", AccentColor: "#222"}
	svg := decodeDataURI(t, mustSynthesize(t, d))
	if strings.Contains(svg, "<script>") || strings.Contains(svg, "<b>") {
		t.Fatalf("expected escaped markup:\n%s", svg)
	}
	if !strings.Contains(svg, `id="bg-x___script_-teal"`) {
		t.Fatalf("expected sanitized gradient id:\n%s", svg)
	}
}

func TestDocumentComponentMatchesBytes(t *testing.T) {
	d, _ := catalog.Avatars().Lookup("gamer-teal")
	doc := Build(d)
	var buf bytes.Buffer
	if err := doc.Component().Render(context.Background(), &buf); err != nil {
		t.Fatalf("render component: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), doc.Bytes()) {
		t.Fatal("expected component output to match serialized bytes")
	}
}

func TestDocumentComponentHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	if err := (Document{Size: 10}).Component().Render(ctx, &buf); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func mustSynthesize(t *testing.T, d catalog.Descriptor) string {
	t.Helper()
	uri, err := Synthesize(&d)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	return uri
}
