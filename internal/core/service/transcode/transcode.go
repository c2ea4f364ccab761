package transcode

import (
	"log/slog"

	"github.com/projecthowly/beatstore-bot-sub000/internal/config"
	"github.com/projecthowly/beatstore-bot-sub000/internal/core/port"
)

type transcodeService struct {
	encoder port.AudioEncoder
	cfg     config.EncoderConfig
	logger  *slog.Logger
}

// NewTranscodeService creates a new transcode service
func NewTranscodeService(encoder port.AudioEncoder, cfg config.EncoderConfig, logger *slog.Logger) port.TranscodeService {
	return &transcodeService{
		encoder: encoder,
		cfg:     cfg,
		logger:  logger,
	}
}
