package license

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// V1CreateLicenseRequest is the body request for Create License
type V1CreateLicenseRequest struct {
	Name string `json:"name"`
}

// V1LicenseResponse is the wire form of a license
type V1LicenseResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateLicenseV1 is the handler for create license v1
func (h *HandlerV1) CreateLicenseV1(w http.ResponseWriter, r *http.Request) {

	var req V1CreateLicenseRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		h.logger.Error("error decoding create license request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	created, err := h.licenseService.CreateLicense(r.Context(), req.Name)
	switch {
	case errors.Is(err, domain.ErrLicenseNameRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrAlreadyExists):
		http.Error(w, "license already exists", http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("error creating license", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := V1LicenseResponse{
		ID:        created.ID,
		Name:      created.Name,
		CreatedAt: created.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
