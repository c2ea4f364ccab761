package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// V1SetMetadataRequest is the body request for Set Metadata. Prices are
// keyed by license id.
type V1SetMetadataRequest struct {
	Title        string             `json:"title"`
	MusicalKey   string             `json:"musical_key"`
	Tempo        string             `json:"tempo"`
	Prices       map[string]float64 `json:"prices"`
	FreeDownload bool               `json:"free_download"`
}

// V1SetMetadataResponse is the response to Set Metadata when validation fails
type V1SetMetadataResponse struct {
	Violations domain.FieldViolations `json:"violations"`
}

// SetMetadataV1 validates and records the beat metadata draft
func (h *HandlerV1) SetMetadataV1(w http.ResponseWriter, r *http.Request) {

	sessionID, ok := sessionIDFromURL(r)
	if !ok {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	var req V1SetMetadataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding set metadata request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	prices := make(map[uuid.UUID]float64, len(req.Prices))
	for rawID, price := range req.Prices {
		licenseID, err := uuid.Parse(rawID)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid license id: %s", rawID), http.StatusBadRequest)
			return
		}
		prices[licenseID] = price
	}

	draft := domain.BeatDraft{
		Title:        req.Title,
		MusicalKey:   req.MusicalKey,
		Tempo:        req.Tempo,
		Prices:       prices,
		FreeDownload: req.FreeDownload,
	}

	violations, err := h.sessionService.SetMetadata(r.Context(), sessionID, draft)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error setting metadata", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	if len(violations) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		if err := json.NewEncoder(w).Encode(V1SetMetadataResponse{Violations: violations}); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
