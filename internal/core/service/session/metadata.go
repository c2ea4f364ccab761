package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// SetMetadata validates the draft against the configured licenses and
// records it on the session. Every violated field is reported at once;
// nothing about the slots changes either way.
func (s *sessionService) SetMetadata(ctx context.Context, sessionID uuid.UUID, draft domain.BeatDraft) (domain.FieldViolations, error) {
	licenses, err := s.uow.LicenseRepo().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	meta, violations := draft.Validate(licenses)

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	session.draft = draft
	if len(violations) == 0 {
		session.meta = meta
		session.metadataValid = true
	} else {
		session.metadataValid = false
	}

	return violations, nil
}
