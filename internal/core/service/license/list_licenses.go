package license

import (
	"context"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// ListLicenses lists every configured license tier
func (l *licenseService) ListLicenses(ctx context.Context) ([]domain.License, error) {
	return l.repo.FindAll(ctx)
}
