package license

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// MockLicenseService is a mock implementation of LicenseService
type MockLicenseService struct {
	mock.Mock
}

func (m *MockLicenseService) CreateLicense(ctx context.Context, name string) (*domain.License, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.License), args.Error(1)
}

func (m *MockLicenseService) ListLicenses(ctx context.Context) ([]domain.License, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.License), args.Error(1)
}
