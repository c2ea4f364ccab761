package session

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// MockSessionService is a mock implementation of UploadSessionService
type MockSessionService struct {
	mock.Mock
}

// NewMockSessionService creates a new MockSessionService
func NewMockSessionService() *MockSessionService {
	return &MockSessionService{}
}

func (m *MockSessionService) Create(ctx context.Context, producerName, producerHandle string) (uuid.UUID, error) {
	args := m.Called(ctx, producerName, producerHandle)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockSessionService) Assign(ctx context.Context, sessionID uuid.UUID, kind domain.SlotKind, filename string, r io.Reader, size int64) (string, error) {
	args := m.Called(ctx, sessionID, kind, filename, r, size)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) ClearSlot(ctx context.Context, sessionID uuid.UUID, kind domain.SlotKind) error {
	args := m.Called(ctx, sessionID, kind)
	return args.Error(0)
}

func (m *MockSessionService) SetMetadata(ctx context.Context, sessionID uuid.UUID, draft domain.BeatDraft) (domain.FieldViolations, error) {
	args := m.Called(ctx, sessionID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.FieldViolations), args.Error(1)
}

func (m *MockSessionService) Describe(ctx context.Context, sessionID uuid.UUID) (*domain.SessionView, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionView), args.Error(1)
}

func (m *MockSessionService) Submit(ctx context.Context, sessionID uuid.UUID) (*uuid.UUID, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*uuid.UUID), args.Error(1)
}

func (m *MockSessionService) PurgeExpired(ctx context.Context, now time.Time) int {
	args := m.Called(ctx, now)
	return args.Int(0)
}
