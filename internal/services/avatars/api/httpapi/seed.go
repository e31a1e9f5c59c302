package httpapi

import (
	"errors"
	"net/http"

	"github.com/louisbranch/avatars/internal/services/avatars/storage"
)

const errSeedsUnavailable = "seed store is not configured"

type seedAvatarsResponse struct {
	Avatars []storage.SeedAvatar `json:"avatars"`
}

type seedBannersResponse struct {
	Banners []storage.SeedBanner `json:"banners"`
}

func (h *Handler) handleSeedAvatars(w http.ResponseWriter, r *http.Request) {
	if h.seeds == nil {
		writeJSONError(w, http.StatusServiceUnavailable, errSeedsUnavailable)
		return
	}
	avatars, err := h.seeds.ListSeedAvatars(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.logger.Error("list seed avatars", "err", err)
		writeJSONError(w, http.StatusInternalServerError, "list seed avatars failed")
		return
	}
	writeJSON(w, http.StatusOK, seedAvatarsResponse{Avatars: avatars})
}

func (h *Handler) handleSeedAvatar(w http.ResponseWriter, r *http.Request) {
	if h.seeds == nil {
		writeJSONError(w, http.StatusServiceUnavailable, errSeedsUnavailable)
		return
	}
	avatar, err := h.seeds.GetSeedAvatar(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("get seed avatar", "err", err)
		writeJSONError(w, http.StatusInternalServerError, "get seed avatar failed")
		return
	}
	writeJSON(w, http.StatusOK, avatar)
}

func (h *Handler) handleSeedBanners(w http.ResponseWriter, r *http.Request) {
	if h.seeds == nil {
		writeJSONError(w, http.StatusServiceUnavailable, errSeedsUnavailable)
		return
	}
	banners, err := h.seeds.ListSeedBanners(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.logger.Error("list seed banners", "err", err)
		writeJSONError(w, http.StatusInternalServerError, "list seed banners failed")
		return
	}
	writeJSON(w, http.StatusOK, seedBannersResponse{Banners: banners})
}
