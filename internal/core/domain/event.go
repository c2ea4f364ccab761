package domain

import "github.com/google/uuid"

// TranscodeRequested is published when a submitted beat's WAV master needs
// its promo and deliverable renditions derived
type TranscodeRequested struct {
	BeatID         uuid.UUID `json:"beat_id"`
	Title          string    `json:"title"`
	MusicalKey     string    `json:"musical_key"`
	BPM            float64   `json:"bpm"`
	ProducerName   string    `json:"producer_name"`
	ProducerHandle string    `json:"producer_handle"`
	WavURL         string    `json:"wav_url"`
	Folder         string    `json:"folder"`
}
