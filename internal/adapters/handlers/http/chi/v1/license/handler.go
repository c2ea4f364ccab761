package license

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/port"
)

// HandlerV1 is the handler for v1 license routes
type HandlerV1 struct {
	licenseService port.LicenseService
	logger         *slog.Logger
}

// NewLicenseHandlerV1 creates HandlerV1
func NewLicenseHandlerV1(service port.LicenseService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		licenseService: service,
		logger:         logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.CreateLicenseV1)
	router.Get("/", h.ListLicensesV1)

	return router
}
