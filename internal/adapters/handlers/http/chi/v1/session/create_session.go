package session

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// V1CreateSessionRequest is the body request for Create Session
type V1CreateSessionRequest struct {
	ProducerName   string `json:"producer_name"`
	ProducerHandle string `json:"producer_handle"`
}

// V1CreateSessionResponse is the response to Create Session
type V1CreateSessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
}

// CreateSessionV1 opens a new upload session
func (h *HandlerV1) CreateSessionV1(w http.ResponseWriter, r *http.Request) {

	var req V1CreateSessionRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		h.logger.Error("error decoding create session request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.ProducerName == "" || req.ProducerHandle == "" {
		http.Error(w, "producer_name and producer_handle required", http.StatusBadRequest)
		return
	}

	sessionID, err := h.sessionService.Create(r.Context(), req.ProducerName, req.ProducerHandle)
	if err != nil {
		h.logger.Error("error creating session", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(V1CreateSessionResponse{SessionID: sessionID}); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
