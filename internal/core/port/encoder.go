package port

import (
	"context"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// AudioEncoder runs one external encoding process. The output file exists
// at job.OutputPath only when Encode returns nil.
type AudioEncoder interface {
	Encode(ctx context.Context, job domain.EncodeJob) error
}
