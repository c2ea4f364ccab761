package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// V1SubmitResponse is the response to Submit
type V1SubmitResponse struct {
	BeatID uuid.UUID `json:"beat_id"`
}

// SubmitV1 persists the session as a beat and requests transcoding
func (h *HandlerV1) SubmitV1(w http.ResponseWriter, r *http.Request) {

	sessionID, ok := sessionIDFromURL(r)
	if !ok {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	beatID, err := h.sessionService.Submit(r.Context(), sessionID)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrSessionNotReady),
		errors.Is(err, domain.ErrMetadataInvalid),
		errors.Is(err, domain.ErrSubmitInFlight):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("error submitting session", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(V1SubmitResponse{BeatID: *beatID}); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
