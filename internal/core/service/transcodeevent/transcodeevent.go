package transcodeevent

import (
	"log/slog"

	"github.com/projecthowly/beatstore-bot-sub000/internal/config"
	"github.com/projecthowly/beatstore-bot-sub000/internal/core/port"
)

type transcodeEventService struct {
	storage    port.ObjectStorage
	uow        port.UnitOfWork
	transcoder port.TranscodeService
	cfg        config.EncoderConfig
	logger     *slog.Logger
}

// NewTranscodeEventService creates the handler that turns transcode-requested
// events into published renditions
func NewTranscodeEventService(storage port.ObjectStorage, uow port.UnitOfWork, transcoder port.TranscodeService, cfg config.EncoderConfig, logger *slog.Logger) port.MessageService {
	return &transcodeEventService{
		storage:    storage,
		uow:        uow,
		transcoder: transcoder,
		cfg:        cfg,
		logger:     logger,
	}
}
