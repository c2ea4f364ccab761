package session

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// ClearSlotV1 resets one slot back to idle
func (h *HandlerV1) ClearSlotV1(w http.ResponseWriter, r *http.Request) {

	sessionID, ok := sessionIDFromURL(r)
	if !ok {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}
	kind := domain.SlotKind(chi.URLParam(r, "slotKind"))

	err := h.sessionService.ClearSlot(r.Context(), sessionID, kind)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrUnknownSlotKind):
		http.Error(w, "unknown slot kind", http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrUploadInFlight):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("error clearing slot", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
