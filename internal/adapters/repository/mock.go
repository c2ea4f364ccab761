package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
	"github.com/projecthowly/beatstore-bot-sub000/internal/core/port"
)

type MockBeatRepository struct {
	mock.Mock
}

func NewMockBeatRepository() *MockBeatRepository {
	return &MockBeatRepository{}
}

func (m *MockBeatRepository) Create(ctx context.Context, beat domain.Beat) error {
	args := m.Called(ctx, beat)
	return args.Error(0)
}

func (m *MockBeatRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Beat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Beat), args.Error(1)
}

func (m *MockBeatRepository) UpdateRenditionURLs(ctx context.Context, id uuid.UUID, taggedURL, untaggedURL string) error {
	args := m.Called(ctx, id, taggedURL, untaggedURL)
	return args.Error(0)
}

func (m *MockBeatRepository) SetPrices(ctx context.Context, beatID uuid.UUID, prices map[uuid.UUID]float64) error {
	args := m.Called(ctx, beatID, prices)
	return args.Error(0)
}

type MockLicenseRepository struct {
	mock.Mock
}

func NewMockLicenseRepository() *MockLicenseRepository {
	return &MockLicenseRepository{}
}

func (m *MockLicenseRepository) Create(ctx context.Context, name string) (*domain.License, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.License), args.Error(1)
}

func (m *MockLicenseRepository) FindAll(ctx context.Context) ([]domain.License, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.License), args.Error(1)
}

type MockUnitOfWork struct {
	mock.Mock
	beatRepo    *MockBeatRepository
	licenseRepo *MockLicenseRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		beatRepo:    &MockBeatRepository{},
		licenseRepo: &MockLicenseRepository{},
	}
}

func (m *MockUnitOfWork) BeatRepo() port.BeatRepository {
	return m.beatRepo
}

func (m *MockUnitOfWork) LicenseRepo() port.LicenseRepository {
	return m.licenseRepo
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)

	if err := fn(m); err != nil {
		return err
	}

	return args.Error(0)
}

func (m *MockUnitOfWork) GetBeatRepoMock() *MockBeatRepository {
	return m.beatRepo
}

func (m *MockUnitOfWork) GetLicenseRepoMock() *MockLicenseRepository {
	return m.licenseRepo
}
