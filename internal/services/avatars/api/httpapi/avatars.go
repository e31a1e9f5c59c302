package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/louisbranch/avatars/internal/platform/assets/avatarsvg"
	"github.com/louisbranch/avatars/internal/platform/assets/catalog"
	"github.com/louisbranch/avatars/internal/platform/pagination"
)

type listAvatarsResponse struct {
	Avatars       []catalog.Descriptor `json:"avatars"`
	NextPageToken string               `json:"next_page_token,omitempty"`
	TotalSize     int                  `json:"total_size"`
}

type avatarResponse struct {
	Avatar catalog.Descriptor `json:"avatar"`
	Image  string             `json:"image"`
}

func (h *Handler) handleListAvatars(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	pageSize := 0
	if raw := strings.TrimSpace(query.Get("page_size")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			writeJSONError(w, http.StatusBadRequest, "page_size must be a non-negative integer")
			return
		}
		pageSize = value
	}

	page, err := h.catalog.Page(query.Get("q"), pageSize, query.Get("page_token"))
	if err != nil {
		if errors.Is(err, pagination.ErrPageTokenInvalid) {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "list avatars failed")
		return
	}
	descriptors := page.Descriptors
	if descriptors == nil {
		descriptors = []catalog.Descriptor{}
	}
	writeJSON(w, http.StatusOK, listAvatarsResponse{
		Avatars:       descriptors,
		NextPageToken: page.NextPageToken,
		TotalSize:     page.TotalSize,
	})
}

func (h *Handler) handleRandomAvatar(w http.ResponseWriter, _ *http.Request) {
	d, err := h.pickRandom()
	if err != nil {
		writeJSONError(w, http.StatusNotFound, err.Error())
		return
	}
	h.writeAvatar(w, d)
}

func (h *Handler) handleGetAvatar(w http.ResponseWriter, r *http.Request) {
	d, ok := h.catalog.Lookup(r.PathValue("id"))
	if !ok {
		writeJSONError(w, http.StatusNotFound, avatarsvg.ErrDescriptorNotFound.Error())
		return
	}
	h.writeAvatar(w, d)
}

func (h *Handler) writeAvatar(w http.ResponseWriter, d catalog.Descriptor) {
	image, err := avatarsvg.Synthesize(&d)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "synthesize avatar failed")
		return
	}
	writeJSON(w, http.StatusOK, avatarResponse{Avatar: d, Image: image})
}

func (h *Handler) handleAvatarImage(w http.ResponseWriter, r *http.Request) {
	d, ok := h.catalog.Lookup(r.PathValue("id"))
	if !ok {
		writeJSONError(w, http.StatusNotFound, avatarsvg.ErrDescriptorNotFound.Error())
		return
	}
	w.Header().Set("Content-Type", avatarsvg.MediaType)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	if err := avatarsvg.Build(d).Component().Render(r.Context(), w); err != nil {
		h.logger.Warn("render avatar image", "id", d.ID, "err", err)
	}
}
