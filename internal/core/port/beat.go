package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// BeatRepository is an interface to define beat repository interactions
type BeatRepository interface {
	Create(ctx context.Context, beat domain.Beat) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Beat, error)
	UpdateRenditionURLs(ctx context.Context, id uuid.UUID, taggedURL, untaggedURL string) error
	SetPrices(ctx context.Context, beatID uuid.UUID, prices map[uuid.UUID]float64) error
}

// LicenseRepository is an interface to define license repository interactions
type LicenseRepository interface {
	Create(ctx context.Context, name string) (*domain.License, error)
	FindAll(ctx context.Context) ([]domain.License, error)
}
