package transcode

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// ProcessMaster derives the tagged and untagged MP3 renditions from one WAV
// master. Both encodes run concurrently against the same read-only input;
// the first failure cancels the sibling through the group context, and any
// output already written is removed before the error is returned. Either
// both renditions exist afterwards or neither does.
func (t *transcodeService) ProcessMaster(ctx context.Context, job domain.TranscodeJob) (domain.RenditionPair, error) {
	if job.InputPath == "" {
		return domain.RenditionPair{}, errors.New("input path required")
	}
	if job.OutputDir == "" {
		return domain.RenditionPair{}, errors.New("output directory required")
	}

	taggedPath := filepath.Join(job.OutputDir, domain.RenditionFilename(job.InputPath, domain.RenditionTagged))
	untaggedPath := filepath.Join(job.OutputDir, domain.RenditionFilename(job.InputPath, domain.RenditionUntagged))
	watermark := domain.WatermarkText(job.ProducerName)

	g, groupCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return t.encoder.Encode(groupCtx, domain.EncodeJob{
			InputPath:   job.InputPath,
			OutputPath:  taggedPath,
			BitrateKbps: t.cfg.BitrateKbps,
			Metadata: map[string]string{
				"artist":  watermark,
				"comment": watermark,
			},
		})
	})

	g.Go(func() error {
		return t.encoder.Encode(groupCtx, domain.EncodeJob{
			InputPath:     job.InputPath,
			OutputPath:    untaggedPath,
			BitrateKbps:   t.cfg.BitrateKbps,
			StripMetadata: true,
		})
	})

	if err := g.Wait(); err != nil {
		t.removeOutputs(taggedPath, untaggedPath)
		return domain.RenditionPair{}, fmt.Errorf("%w: %w", domain.ErrEncodeFailed, err)
	}

	t.logger.Info("master processed",
		"input", job.InputPath,
		"tagged", taggedPath,
		"untagged", untaggedPath)

	return domain.RenditionPair{TaggedPath: taggedPath, UntaggedPath: untaggedPath}, nil
}

func (t *transcodeService) removeOutputs(paths ...string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			t.logger.Error("failed to remove partial rendition", "path", path, "error", err)
		}
	}
}
