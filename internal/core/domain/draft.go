package domain

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// MusicalKeys is the fixed set of key names a beat can be filed under.
// There is no default: the producer has to pick one.
var MusicalKeys = []string{
	"C", "Cm", "C#", "C#m",
	"D", "Dm", "D#", "D#m",
	"E", "Em",
	"F", "Fm", "F#", "F#m",
	"G", "Gm", "G#", "G#m",
	"A", "Am", "A#", "A#m",
	"B", "Bm",
}

// ValidMusicalKey reports whether key is one of MusicalKeys
func ValidMusicalKey(key string) bool {
	for _, k := range MusicalKeys {
		if k == key {
			return true
		}
	}
	return false
}

const maxTempoBPM = 999

// BeatDraft is the raw metadata collected alongside the asset slots. Tempo
// stays a string until validation because producers type it with either a
// dot or a comma as decimal separator.
type BeatDraft struct {
	Title        string
	MusicalKey   string
	Tempo        string
	Prices       map[uuid.UUID]float64
	FreeDownload bool
}

// FieldViolations maps a field name to why it was rejected. Every violated
// field appears; validation never stops at the first failure.
type FieldViolations map[string]string

// Validate checks every field of the draft against the configured licenses
// and returns the normalized metadata plus all violations found. The
// returned BeatMeta is only meaningful when the violation map is empty.
func (d BeatDraft) Validate(licenses []License) (BeatMeta, FieldViolations) {
	violations := make(FieldViolations)
	var meta BeatMeta

	meta.Title = strings.TrimSpace(d.Title)
	if meta.Title == "" {
		violations["title"] = "title must not be empty"
	}

	if d.MusicalKey == "" {
		violations["musical_key"] = "musical key is required"
	} else if !ValidMusicalKey(d.MusicalKey) {
		violations["musical_key"] = "unknown musical key: " + d.MusicalKey
	} else {
		meta.MusicalKey = d.MusicalKey
	}

	bpm, err := ParseTempo(d.Tempo)
	if err != nil {
		violations["tempo"] = err.Error()
	} else {
		meta.BPM = bpm
	}

	meta.Prices = make(map[uuid.UUID]float64, len(licenses))
	for _, license := range licenses {
		price, ok := d.Prices[license.ID]
		if !ok || price <= 0 {
			violations["price:"+license.Name] = "price must be greater than 0"
			continue
		}
		meta.Prices[license.ID] = price
	}

	meta.FreeDownload = d.FreeDownload
	return meta, violations
}

// ParseTempo normalizes a tempo input to a dot-decimal BPM value. Comma
// decimal separators are accepted; the value must be > 0 and <= 999.
func ParseTempo(raw string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if normalized == "" {
		return 0, ErrTempoRequired
	}

	bpm, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, ErrTempoNotNumeric
	}
	if bpm <= 0 {
		return 0, ErrTempoTooSmall
	}
	if bpm > maxTempoBPM {
		return 0, ErrTempoTooBig
	}
	return bpm, nil
}

// BeatMeta is the validated, normalized form of a BeatDraft
type BeatMeta struct {
	Title        string
	MusicalKey   string
	BPM          float64
	Prices       map[uuid.UUID]float64
	FreeDownload bool
}
