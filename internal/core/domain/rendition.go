package domain

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// RenditionKind names one derived MP3 output of the transcoding step
type RenditionKind string

const (
	RenditionTagged   RenditionKind = "tagged"
	RenditionUntagged RenditionKind = "untagged"
)

// EncodeJob describes one external encoder invocation
type EncodeJob struct {
	InputPath     string
	OutputPath    string
	BitrateKbps   int
	Metadata      map[string]string
	StripMetadata bool
}

// TranscodeJob is the input of one master-processing run: a local WAV path,
// the producer to watermark with, and the directory outputs land in
type TranscodeJob struct {
	InputPath    string
	ProducerName string
	OutputDir    string
}

// RenditionPair holds the two outputs of a successful transcoding run.
// Neither path is populated unless both encodes succeeded.
type RenditionPair struct {
	TaggedPath   string
	UntaggedPath string
}

// WatermarkText builds the string injected into the tagged rendition's
// artist and comment fields
func WatermarkText(producerName string) string {
	return fmt.Sprintf("produced by %s", producerName)
}

// RenditionFilename derives the output filename for a rendition by suffixing
// the source basename and swapping the extension to mp3
func RenditionFilename(inputPath string, kind RenditionKind) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s_%s.mp3", stem, kind)
}

// illegal in filenames on the platforms downloads land on
const illegalFilenameChars = `<>:"/\|?*`

// FreeDownloadFilename computes the human-facing filename of a free-download
// deliverable: "@{handle} {bpm}BPM {key} {title}". The tempo and key
// segments are omitted when absent; characters illegal in filenames are
// stripped and the result is trimmed.
func FreeDownloadFilename(handle string, bpm *float64, key, title string) string {
	parts := []string{"@" + handle}
	if bpm != nil {
		parts = append(parts, strconv.FormatFloat(*bpm, 'f', -1, 64)+"BPM")
	}
	if key != "" {
		parts = append(parts, key)
	}
	if title != "" {
		parts = append(parts, title)
	}

	name := strings.Join(parts, " ")
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(illegalFilenameChars, r) {
			return -1
		}
		return r
	}, name)
	return strings.TrimSpace(name)
}
