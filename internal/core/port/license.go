package port

import (
	"context"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// LicenseService is an interface to define license operations
type LicenseService interface {
	CreateLicense(ctx context.Context, name string) (*domain.License, error)
	ListLicenses(ctx context.Context) ([]domain.License, error)
}
