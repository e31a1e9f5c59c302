package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/louisbranch/avatars/internal/services/avatars/identity"
)

const maxResolveBody = 16 << 10

func (h *Handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req identity.Identity
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxResolveBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid identity body")
		return
	}

	res, err := h.resolver.Explain(req)
	if err != nil {
		if errors.Is(err, identity.ErrUnresolvable) {
			writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "resolve identity failed")
		return
	}
	writeJSON(w, http.StatusOK, res)
}
