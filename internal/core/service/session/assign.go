package session

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// Assign pushes a file into a slot. The slot moves to uploading immediately
// and each slot uploads independently: concurrent Assign calls for distinct
// slots never block each other, only the short bookkeeping sections are
// serialized. A slot that is already uploading or holds an accepted upload
// refuses the assignment; the caller must wait or clear first. While a
// submit is running every assignment is refused.
func (s *sessionService) Assign(ctx context.Context, sessionID uuid.UUID, kind domain.SlotKind, filename string, r io.Reader, size int64) (string, error) {
	if !kind.Valid() {
		return "", domain.ErrUnknownSlotKind
	}
	if size > s.cfg.MaxUploadSize {
		return "", domain.ErrFileSizeTooBig
	}

	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return "", domain.ErrSessionNotFound
	}
	if session.submitting {
		s.mu.Unlock()
		return "", domain.ErrSubmitInFlight
	}

	slot := session.slots[kind]
	attempt, err := slot.BeginUpload(filename)
	if err != nil {
		s.mu.Unlock()
		return "", err
	}
	folder := session.folder
	s.mu.Unlock()

	key := s.storage.GenerateKey(folder, filename)
	contentType := s.storage.MimeFor(filename)

	// suspension point: no lock is held across the upload
	url, uploadErr := s.storage.Put(ctx, key, contentType, r, size)

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok = s.sessions[sessionID]
	if !ok {
		// session was purged while the upload ran; the object is orphaned
		if uploadErr == nil {
			s.reclaimObject(ctx, url)
		}
		return "", domain.ErrSessionNotFound
	}
	slot = session.slots[kind]

	if uploadErr != nil {
		if !slot.FailUpload(attempt, uploadErr) {
			return "", domain.ErrUploadSuperseded
		}
		s.logger.Error("slot upload failed",
			slog.String("sessionID", sessionID.String()),
			slog.String("slot", string(kind)),
			slog.String("error", uploadErr.Error()))
		return "", uploadErr
	}

	if !slot.CompleteUpload(attempt, url) {
		// a stale completion never overwrites newer slot state; the
		// uploaded object is reclaimed instead
		s.reclaimObject(ctx, url)
		return "", domain.ErrUploadSuperseded
	}

	s.logger.Info("slot upload accepted",
		slog.String("sessionID", sessionID.String()),
		slog.String("slot", string(kind)),
		slog.String("url", url))
	return url, nil
}

func (s *sessionService) reclaimObject(ctx context.Context, url string) {
	key, ok := s.storage.KeyFromURL(url)
	if !ok {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Error("failed to reclaim object", slog.String("key", key), slog.String("error", err.Error()))
	}
}
