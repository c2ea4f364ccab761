package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
	"github.com/projecthowly/beatstore-bot-sub000/internal/core/port"
)

type sqlBeatRepository struct {
	db SQLQuerier
}

// NewSqlBeatRepository creates sqlBeatRepository that implements port.BeatRepository
func NewSqlBeatRepository(db SQLQuerier) port.BeatRepository {
	return &sqlBeatRepository{
		db: db,
	}
}

// Create creates a new beat
func (s *sqlBeatRepository) Create(ctx context.Context, beat domain.Beat) error {
	query := `INSERT INTO beats (
	              id, producer_name, producer_handle, title, musical_key, bpm,
	              free_download, cover_url, mp3_url, wav_url, stems_url
	          ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := s.db.ExecContext(ctx, query,
		beat.ID, beat.ProducerName, beat.ProducerHandle, beat.Title,
		beat.MusicalKey, beat.BPM, beat.FreeDownload,
		beat.CoverURL, beat.MP3URL, beat.WAVURL, nullable(beat.StemsURL),
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" {
				return fmt.Errorf("beat %s : %w", beat.ID, domain.ErrAlreadyExists)
			}
		}
		return fmt.Errorf("error inserting beat: %w", err)
	}
	return nil
}

// FindByID finds a beat by id, prices included
func (s *sqlBeatRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Beat, error) {
	query := `SELECT id, producer_name, producer_handle, title, musical_key, bpm,
	                 free_download, cover_url, mp3_url, wav_url, stems_url,
	                 tagged_url, untagged_url, created_at, updated_at
	          FROM beats WHERE id = $1`

	var beatDB dbBeat
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&beatDB.ID,
		&beatDB.ProducerName,
		&beatDB.ProducerHandle,
		&beatDB.Title,
		&beatDB.MusicalKey,
		&beatDB.BPM,
		&beatDB.FreeDownload,
		&beatDB.CoverURL,
		&beatDB.MP3URL,
		&beatDB.WAVURL,
		&beatDB.StemsURL,
		&beatDB.TaggedURL,
		&beatDB.UntaggedURL,
		&beatDB.CreatedAt,
		&beatDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBeatNotFound
		}
		return nil, err
	}

	beat := beatDB.ToDomain()

	prices, err := s.findPrices(ctx, id)
	if err != nil {
		return nil, err
	}
	beat.Prices = prices

	return beat, nil
}

// UpdateRenditionURLs records the durable rendition URLs for a beat
func (s *sqlBeatRepository) UpdateRenditionURLs(ctx context.Context, id uuid.UUID, taggedURL, untaggedURL string) error {
	query := `UPDATE beats
	          SET tagged_url = $1, untagged_url = $2, updated_at = now()
	          WHERE id = $3`

	result, err := s.db.ExecContext(ctx, query, taggedURL, untaggedURL, id)
	if err != nil {
		return fmt.Errorf("error updating rendition urls: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrBeatNotFound
	}

	return nil
}

// SetPrices replaces the per-license prices of a beat
func (s *sqlBeatRepository) SetPrices(ctx context.Context, beatID uuid.UUID, prices map[uuid.UUID]float64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM beat_prices WHERE beat_id = $1`, beatID); err != nil {
		return fmt.Errorf("error clearing beat prices: %w", err)
	}

	if len(prices) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(prices))
	args := make([]interface{}, 0, len(prices)*3)
	i := 1
	for licenseID, price := range prices {
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d)", i, i+1, i+2))
		args = append(args, beatID, licenseID, price)
		i += 3
	}

	query := fmt.Sprintf(
		"INSERT INTO beat_prices (beat_id, license_id, price) VALUES %s",
		strings.Join(placeholders, ", "),
	)

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error inserting beat prices: %w", err)
	}
	return nil
}

func (s *sqlBeatRepository) findPrices(ctx context.Context, beatID uuid.UUID) (map[uuid.UUID]float64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT license_id, price FROM beat_prices WHERE beat_id = $1`, beatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make(map[uuid.UUID]float64)
	for rows.Next() {
		var licenseID uuid.UUID
		var price float64
		if err := rows.Scan(&licenseID, &price); err != nil {
			return nil, err
		}
		prices[licenseID] = price
	}
	return prices, rows.Err()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

type dbBeat struct {
	ID             uuid.UUID
	ProducerName   string
	ProducerHandle string
	Title          string
	MusicalKey     string
	BPM            float64
	FreeDownload   bool
	CoverURL       string
	MP3URL         string
	WAVURL         string
	StemsURL       sql.NullString
	TaggedURL      sql.NullString
	UntaggedURL    sql.NullString
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ToDomain converts to domain.Beat
func (b *dbBeat) ToDomain() *domain.Beat {
	return &domain.Beat{
		ID:             b.ID,
		ProducerName:   b.ProducerName,
		ProducerHandle: b.ProducerHandle,
		Title:          b.Title,
		MusicalKey:     b.MusicalKey,
		BPM:            b.BPM,
		FreeDownload:   b.FreeDownload,
		CoverURL:       b.CoverURL,
		MP3URL:         b.MP3URL,
		WAVURL:         b.WAVURL,
		StemsURL:       b.StemsURL.String,
		TaggedURL:      b.TaggedURL.String,
		UntaggedURL:    b.UntaggedURL.String,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
