package domain

import (
	"time"

	"github.com/google/uuid"
)

// Beat is a submitted catalog item with its collected asset URLs
type Beat struct {
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
	StemsURL       string
	TaggedURL      string
	UntaggedURL    string
	Prices         map[uuid.UUID]float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// License is one configured license tier a beat must be priced for
type License struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}
