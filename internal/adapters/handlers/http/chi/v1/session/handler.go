package session

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/port"
)

// HandlerV1 is the handler for v1 upload session routes
type HandlerV1 struct {
	sessionService port.UploadSessionService
	logger         *slog.Logger
}

// NewSessionHandlerV1 creates HandlerV1
func NewSessionHandlerV1(service port.UploadSessionService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		sessionService: service,
		logger:         logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.CreateSessionV1)
	router.Get("/{sessionID}", h.GetSessionV1)
	router.Post("/{sessionID}/slot/{slotKind}", h.UploadAssetV1)
	router.Delete("/{sessionID}/slot/{slotKind}", h.ClearSlotV1)
	router.Put("/{sessionID}/metadata", h.SetMetadataV1)
	router.Post("/{sessionID}/submit", h.SubmitV1)

	return router
}

func sessionIDFromURL(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
