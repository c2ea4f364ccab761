package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
	"github.com/projecthowly/beatstore-bot-sub000/internal/core/port"
)

// Submit persists the collected metadata and asset URLs as one beat and
// requests transcoding of the WAV master. It refuses unless every mandatory
// slot is ok and the metadata is valid, and a per-session guard rejects a
// second submission while one is running. On persistence failure the
// session survives untouched, slot URLs included, so nothing has to be
// re-uploaded for a retry.
func (s *sessionService) Submit(ctx context.Context, sessionID uuid.UUID) (*uuid.UUID, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrSessionNotFound
	}
	if session.submitting {
		s.mu.Unlock()
		return nil, domain.ErrSubmitInFlight
	}

	slots := make([]domain.AssetSlot, 0, len(domain.SlotKinds))
	for _, kind := range domain.SlotKinds {
		slots = append(slots, *session.slots[kind])
	}
	if !domain.SubmitReadiness(slots) {
		s.mu.Unlock()
		return nil, domain.ErrSessionNotReady
	}
	if !session.metadataValid {
		s.mu.Unlock()
		return nil, domain.ErrMetadataInvalid
	}

	session.submitting = true
	beat := s.beatFromSession(session)
	folder := session.folder
	s.mu.Unlock()

	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		if err := uow.BeatRepo().Create(ctx, beat); err != nil {
			return err
		}
		return uow.BeatRepo().SetPrices(ctx, beat.ID, beat.Prices)
	})
	if txErr != nil {
		s.mu.Lock()
		session.submitting = false
		s.mu.Unlock()
		s.logger.Error("beat submission failed",
			slog.String("sessionID", sessionID.String()),
			slog.String("error", txErr.Error()))
		return nil, txErr
	}

	s.requestTranscode(ctx, beat, folder)

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	s.logger.Info("beat submitted",
		slog.String("sessionID", sessionID.String()),
		slog.String("beatID", beat.ID.String()))
	return &beat.ID, nil
}

func (s *sessionService) beatFromSession(session *uploadSession) domain.Beat {
	now := time.Now()
	return domain.Beat{
		ID:             uuid.New(),
		ProducerName:   session.producerName,
		ProducerHandle: session.producerHandle,
		Title:          session.meta.Title,
		MusicalKey:     session.meta.MusicalKey,
		BPM:            session.meta.BPM,
		FreeDownload:   session.meta.FreeDownload,
		CoverURL:       session.slots[domain.SlotCover].RemoteURL,
		MP3URL:         session.slots[domain.SlotMP3].RemoteURL,
		WAVURL:         session.slots[domain.SlotWAV].RemoteURL,
		StemsURL:       session.slots[domain.SlotStems].RemoteURL,
		Prices:         session.meta.Prices,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// requestTranscode publishes the transcode-requested event. Rendition
// derivation is best effort and one-shot: a publish failure is logged, the
// submission itself stands.
func (s *sessionService) requestTranscode(ctx context.Context, beat domain.Beat, folder string) {
	event := domain.TranscodeRequested{
		BeatID:         beat.ID,
		Title:          beat.Title,
		MusicalKey:     beat.MusicalKey,
		BPM:            beat.BPM,
		ProducerName:   beat.ProducerName,
		ProducerHandle: beat.ProducerHandle,
		WavURL:         beat.WAVURL,
		Folder:         folder,
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("failed to marshal transcode request", "error", err)
		return
	}
	if err := s.publisher.Publish(ctx, data); err != nil {
		s.logger.Error("failed to publish transcode request",
			slog.String("beatID", beat.ID.String()),
			slog.String("error", err.Error()))
	}
}
