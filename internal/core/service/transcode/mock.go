package transcode

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// MockTranscodeService is a mock implementation of TranscodeService
type MockTranscodeService struct {
	mock.Mock
}

// NewMockTranscodeService creates a new MockTranscodeService
func NewMockTranscodeService() *MockTranscodeService {
	return &MockTranscodeService{}
}

func (m *MockTranscodeService) ProcessMaster(ctx context.Context, job domain.TranscodeJob) (domain.RenditionPair, error) {
	args := m.Called(ctx, job)
	return args.Get(0).(domain.RenditionPair), args.Error(1)
}
