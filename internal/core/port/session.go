package port

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// UploadSessionService drives the asset slots of pending beats through
// their upload lifecycle and gates submission
type UploadSessionService interface {
	Create(ctx context.Context, producerName, producerHandle string) (uuid.UUID, error)
	Assign(ctx context.Context, sessionID uuid.UUID, kind domain.SlotKind, filename string, r io.Reader, size int64) (string, error)
	ClearSlot(ctx context.Context, sessionID uuid.UUID, kind domain.SlotKind) error
	SetMetadata(ctx context.Context, sessionID uuid.UUID, draft domain.BeatDraft) (domain.FieldViolations, error)
	Describe(ctx context.Context, sessionID uuid.UUID) (*domain.SessionView, error)
	Submit(ctx context.Context, sessionID uuid.UUID) (*uuid.UUID, error)
	PurgeExpired(ctx context.Context, now time.Time) int
}
