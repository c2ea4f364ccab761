package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// V1SlotView is the per-slot part of a session response
type V1SlotView struct {
	Kind      string `json:"kind"`
	Status    string `json:"status"`
	Filename  string `json:"filename,omitempty"`
	RemoteURL string `json:"remote_url,omitempty"`
	LastError string `json:"last_error,omitempty"`
}

// V1SessionResponse is the response to Get Session
type V1SessionResponse struct {
	SessionID      uuid.UUID    `json:"session_id"`
	ProducerName   string       `json:"producer_name"`
	ProducerHandle string       `json:"producer_handle"`
	Slots          []V1SlotView `json:"slots"`
	MetadataValid  bool         `json:"metadata_valid"`
	SubmitReady    bool         `json:"submit_ready"`
	ExpiresAt      time.Time    `json:"expires_at"`
}

// GetSessionV1 snapshots the session state
func (h *HandlerV1) GetSessionV1(w http.ResponseWriter, r *http.Request) {

	sessionID, ok := sessionIDFromURL(r)
	if !ok {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	view, err := h.sessionService.Describe(r.Context(), sessionID)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error describing session", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	slots := make([]V1SlotView, 0, len(view.Slots))
	for _, slot := range view.Slots {
		slots = append(slots, V1SlotView{
			Kind:      string(slot.Kind),
			Status:    string(slot.Status),
			Filename:  slot.Filename,
			RemoteURL: slot.RemoteURL,
			LastError: slot.LastError,
		})
	}

	resp := V1SessionResponse{
		SessionID:      view.ID,
		ProducerName:   view.ProducerName,
		ProducerHandle: view.ProducerHandle,
		Slots:          slots,
		MetadataValid:  view.MetadataValid,
		SubmitReady:    view.SubmitReady,
		ExpiresAt:      view.ExpiresAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
