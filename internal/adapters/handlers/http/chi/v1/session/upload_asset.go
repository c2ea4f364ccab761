package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// V1UploadAssetResponse is the response to Upload Asset
type V1UploadAssetResponse struct {
	URL string `json:"url"`
}

// UploadAssetV1 pushes a multipart file into one slot of the session
func (h *HandlerV1) UploadAssetV1(w http.ResponseWriter, r *http.Request) {

	sessionID, ok := sessionIDFromURL(r)
	if !ok {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}
	kind := domain.SlotKind(chi.URLParam(r, "slotKind"))

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.sessionService.Assign(r.Context(), sessionID, kind, header.Filename, file, header.Size)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrUnknownSlotKind):
		http.Error(w, "unknown slot kind", http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrFileSizeTooBig):
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	case errors.Is(err, domain.ErrUploadInFlight),
		errors.Is(err, domain.ErrSlotOccupied),
		errors.Is(err, domain.ErrUploadSuperseded):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case errors.Is(err, domain.ErrStorage):
		h.logger.Error("storage error during upload", "error", err)
		http.Error(w, "storage unavailable", http.StatusBadGateway)
		return
	case err != nil:
		h.logger.Error("error uploading asset", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(V1UploadAssetResponse{URL: url}); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
