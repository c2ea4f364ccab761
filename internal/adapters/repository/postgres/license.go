package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
	"github.com/projecthowly/beatstore-bot-sub000/internal/core/port"
)

type sqlLicenseRepository struct {
	db SQLQuerier
}

// NewSqlLicenseRepository creates sqlLicenseRepository that implements port.LicenseRepository
func NewSqlLicenseRepository(db SQLQuerier) port.LicenseRepository {
	return &sqlLicenseRepository{
		db: db,
	}
}

// Create creates a new license
func (s *sqlLicenseRepository) Create(ctx context.Context, name string) (*domain.License, error) {
	query := `INSERT INTO licenses (name) VALUES ($1) RETURNING id, name, created_at`

	var licenseDB dbLicense
	err := s.db.QueryRowContext(ctx, query, name).Scan(
		&licenseDB.ID,
		&licenseDB.Name,
		&licenseDB.CreatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" {
				return nil, fmt.Errorf("license %s : %w", name, domain.ErrAlreadyExists)
			}
		}
		return nil, err
	}

	return licenseDB.ToDomain(), nil
}

// FindAll lists every configured license
func (s *sqlLicenseRepository) FindAll(ctx context.Context) ([]domain.License, error) {
	query := `SELECT id, name, created_at FROM licenses ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var licenses []domain.License
	for rows.Next() {
		var licenseDB dbLicense
		if err := rows.Scan(&licenseDB.ID, &licenseDB.Name, &licenseDB.CreatedAt); err != nil {
			return nil, err
		}
		licenses = append(licenses, *licenseDB.ToDomain())
	}
	return licenses, rows.Err()
}

type dbLicense struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// ToDomain converts to domain.License
func (l *dbLicense) ToDomain() *domain.License {
	return &domain.License{
		ID:        l.ID,
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
	}
}
