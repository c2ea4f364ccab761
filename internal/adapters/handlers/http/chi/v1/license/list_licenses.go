package license

import (
	"encoding/json"
	"net/http"
)

// V1ListLicensesResponse is the response to List Licenses
type V1ListLicensesResponse struct {
	Licenses []V1LicenseResponse `json:"licenses"`
}

// ListLicensesV1 is the handler for list licenses v1
func (h *HandlerV1) ListLicensesV1(w http.ResponseWriter, r *http.Request) {

	licenses, err := h.licenseService.ListLicenses(r.Context())
	if err != nil {
		h.logger.Error("error listing licenses", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := V1ListLicensesResponse{Licenses: make([]V1LicenseResponse, 0, len(licenses))}
	for _, l := range licenses {
		resp.Licenses = append(resp.Licenses, V1LicenseResponse{
			ID:        l.ID,
			Name:      l.Name,
			CreatedAt: l.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
