package encoder

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

type MockEncoder struct {
	mock.Mock
}

func NewMockEncoder() *MockEncoder {
	return &MockEncoder{}
}

func (m *MockEncoder) Encode(ctx context.Context, job domain.EncodeJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}
