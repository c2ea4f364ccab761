package transcodeevent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// HandleMessage processes one transcode request end to end: fetch the WAV
// master into a scratch directory, derive both renditions, publish them and
// record their URLs on the beat. Any error leaves no rendition published, so
// a redelivered message starts from a clean slate.
func (s *transcodeEventService) HandleMessage(ctx context.Context, data []byte) error {
	var event domain.TranscodeRequested
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("could not unmarshal transcode request: %v", err)
	}

	key, ok := s.storage.KeyFromURL(event.WavURL)
	if !ok {
		return fmt.Errorf("wav url %s does not belong to the bucket", event.WavURL)
	}

	s.logger.Info("handling transcode request",
		"beatID", event.BeatID.String(), "key", key)

	workDir, err := os.MkdirTemp(s.cfg.WorkDir, "transcode-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(workDir)

	inputPath := filepath.Join(workDir, filepath.Base(key))
	if err := s.download(ctx, key, inputPath); err != nil {
		return err
	}

	pair, err := s.transcoder.ProcessMaster(ctx, domain.TranscodeJob{
		InputPath:    inputPath,
		ProducerName: event.ProducerName,
		OutputDir:    workDir,
	})
	if err != nil {
		return err
	}

	taggedURL, untaggedURL, err := s.publishRenditions(ctx, event.Folder, pair)
	if err != nil {
		return err
	}

	if err := s.uow.BeatRepo().UpdateRenditionURLs(ctx, event.BeatID, taggedURL, untaggedURL); err != nil {
		if _, delErr := s.storage.DeleteMany(ctx, []string{taggedURL, untaggedURL}); delErr != nil {
			s.logger.Error("failed to reclaim renditions", "error", delErr)
		}
		return err
	}

	s.logger.Info("renditions published",
		"beatID", event.BeatID.String(),
		"taggedURL", taggedURL,
		"untaggedURL", untaggedURL)
	return nil
}

func (s *transcodeEventService) download(ctx context.Context, key, dest string) error {
	obj, err := s.storage.Get(ctx, key)
	if err != nil {
		return err
	}
	defer obj.Close()

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, obj); err != nil {
		return fmt.Errorf("failed to download %s: %w", key, err)
	}
	return nil
}

// publishRenditions uploads both renditions, never leaving only one of them
// durable: when the second upload fails, the first is deleted again.
func (s *transcodeEventService) publishRenditions(ctx context.Context, folder string, pair domain.RenditionPair) (string, string, error) {
	renditionsFolder := folder + "/renditions"

	taggedKey, taggedURL, err := s.uploadFile(ctx, renditionsFolder, pair.TaggedPath)
	if err != nil {
		return "", "", err
	}

	_, untaggedURL, err := s.uploadFile(ctx, renditionsFolder, pair.UntaggedPath)
	if err != nil {
		if delErr := s.storage.Delete(ctx, taggedKey); delErr != nil {
			s.logger.Error("failed to reclaim tagged rendition", "key", taggedKey, "error", delErr)
		}
		return "", "", err
	}

	return taggedURL, untaggedURL, nil
}

func (s *transcodeEventService) uploadFile(ctx context.Context, folder, path string) (string, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", "", err
	}

	key := s.storage.GenerateKey(folder, filepath.Base(path))
	url, err := s.storage.Put(ctx, key, s.storage.MimeFor(path), f, info.Size())
	if err != nil {
		return "", "", err
	}
	return key, url, nil
}
