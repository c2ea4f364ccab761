package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// ClearSlot resets an ok or error slot back to idle. The remote object, if
// one was recorded, is deleted best effort; failing to reclaim it never
// fails the clear. While a submit is running the clear is refused, a beat
// row must never reference an object reclaimed mid-transaction.
func (s *sessionService) ClearSlot(ctx context.Context, sessionID uuid.UUID, kind domain.SlotKind) error {
	if !kind.Valid() {
		return domain.ErrUnknownSlotKind
	}

	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return domain.ErrSessionNotFound
	}
	if session.submitting {
		s.mu.Unlock()
		return domain.ErrSubmitInFlight
	}

	url, err := session.slots[kind].Clear()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if url != "" {
		s.reclaimObject(ctx, url)
	}
	return nil
}
