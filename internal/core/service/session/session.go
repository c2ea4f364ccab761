package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/projecthowly/beatstore-bot-sub000/internal/config"
	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
	"github.com/projecthowly/beatstore-bot-sub000/internal/core/port"
)

// uploadSession is the in-memory aggregate of one pending beat: its asset
// slots, the metadata draft, and the submit guard. Sessions have no
// server-side identity beyond this process; they live for one creation
// flow and are discarded on submit or expiry.
type uploadSession struct {
	id             uuid.UUID
	producerName   string
	producerHandle string
	folder         string
	slots          map[domain.SlotKind]*domain.AssetSlot
	draft          domain.BeatDraft
	meta           domain.BeatMeta
	metadataValid  bool
	submitting     bool
	expiresAt      time.Time
}

type sessionService struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*uploadSession

	uow       port.UnitOfWork
	storage   port.ObjectStorage
	publisher port.EventPublisher
	cfg       config.SessionConfig
	logger    *slog.Logger
}

// NewSessionService creates a new upload session service
func NewSessionService(uow port.UnitOfWork, storage port.ObjectStorage, publisher port.EventPublisher, cfg config.SessionConfig, logger *slog.Logger) port.UploadSessionService {
	return &sessionService{
		sessions:  make(map[uuid.UUID]*uploadSession),
		uow:       uow,
		storage:   storage,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}
}

// Create opens a session with every slot idle
func (s *sessionService) Create(ctx context.Context, producerName, producerHandle string) (uuid.UUID, error) {
	id := uuid.New()

	slots := make(map[domain.SlotKind]*domain.AssetSlot, len(domain.SlotKinds))
	for _, kind := range domain.SlotKinds {
		slots[kind] = domain.NewAssetSlot(kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = &uploadSession{
		id:             id,
		producerName:   producerName,
		producerHandle: producerHandle,
		folder:         fmt.Sprintf("producers/%s/%s", producerHandle, id),
		slots:          slots,
		expiresAt:      time.Now().Add(s.cfg.TTL),
	}

	s.logger.Info("upload session created",
		slog.String("sessionID", id.String()),
		slog.String("producer", producerHandle))

	return id, nil
}

// Describe snapshots the session's slots and readiness
func (s *sessionService) Describe(ctx context.Context, sessionID uuid.UUID) (*domain.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	slots := make([]domain.AssetSlot, 0, len(domain.SlotKinds))
	for _, kind := range domain.SlotKinds {
		slots = append(slots, *session.slots[kind])
	}

	return &domain.SessionView{
		ID:             session.id,
		ProducerName:   session.producerName,
		ProducerHandle: session.producerHandle,
		Slots:          slots,
		MetadataValid:  session.metadataValid,
		SubmitReady:    session.metadataValid && domain.SubmitReadiness(slots),
		ExpiresAt:      session.expiresAt,
	}, nil
}

// PurgeExpired discards sessions past their TTL and reclaims whatever they
// had already uploaded, best effort. Returns the number of sessions dropped.
func (s *sessionService) PurgeExpired(ctx context.Context, now time.Time) int {
	s.mu.Lock()
	var orphanedURLs []string
	purged := 0
	for id, session := range s.sessions {
		if session.expiresAt.After(now) || session.submitting {
			continue
		}
		for _, slot := range session.slots {
			if slot.RemoteURL != "" {
				orphanedURLs = append(orphanedURLs, slot.RemoteURL)
			}
		}
		delete(s.sessions, id)
		purged++
	}
	s.mu.Unlock()

	if len(orphanedURLs) > 0 {
		deleted, err := s.storage.DeleteMany(ctx, orphanedURLs)
		if err != nil {
			s.logger.Error("failed to reclaim orphaned uploads", "error", err)
		}
		s.logger.Info("expired sessions purged",
			slog.Int("sessions", purged),
			slog.Int("objectsDeleted", deleted))
	}
	return purged
}
