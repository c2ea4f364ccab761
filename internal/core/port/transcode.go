package port

import (
	"context"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// TranscodeService derives both MP3 renditions from a WAV master. The
// operation is atomic: on error no output file is left behind.
type TranscodeService interface {
	ProcessMaster(ctx context.Context, job domain.TranscodeJob) (domain.RenditionPair, error)
}
