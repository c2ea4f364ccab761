package license

import (
	"context"
	"strings"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// CreateLicense creates a license tier
func (l *licenseService) CreateLicense(ctx context.Context, name string) (*domain.License, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrLicenseNameRequired
	}

	return l.repo.Create(ctx, name)
}
