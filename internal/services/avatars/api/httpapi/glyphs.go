package httpapi

import (
	"io"
	"net/http"

	"github.com/louisbranch/avatars/internal/platform/icons"
)

type glyphResponse struct {
	Label string `json:"label"`
	Ref   string `json:"ref"`
	Path  string `json:"path"`
}

type listGlyphsResponse struct {
	Glyphs []glyphResponse `json:"glyphs"`
}

// handleGlyphs lists the glyph table as JSON, or as markdown when
// format=markdown.
func (h *Handler) handleGlyphs(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "markdown" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, icons.CatalogMarkdown())
		return
	}
	glyphs := icons.Glyphs()
	resp := listGlyphsResponse{Glyphs: make([]glyphResponse, 0, len(glyphs))}
	for _, g := range glyphs {
		resp.Glyphs = append(resp.Glyphs, glyphResponse{Label: g.Label, Ref: g.Ref(), Path: g.Path()})
	}
	writeJSON(w, http.StatusOK, resp)
}
