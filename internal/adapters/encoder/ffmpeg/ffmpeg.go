package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

var commandContext = exec.CommandContext

const defaultBitrateKbps = 320

// Option configures the CLI encoder.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// CLI wraps the ffmpeg command-line encoder.
type CLI struct {
	binary string
}

// NewCLI constructs a CLI encoder using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "ffmpeg"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Encode runs one ffmpeg invocation producing a constant-bitrate MP3 at
// job.OutputPath. Metadata entries are injected as tags; StripMetadata
// drops every tag carried by the source instead.
func (c *CLI) Encode(ctx context.Context, job domain.EncodeJob) error {
	if job.InputPath == "" {
		return errors.New("input path required")
	}
	if job.OutputPath == "" {
		return errors.New("output path required")
	}

	cmd := commandContext(ctx, c.binary, buildArgs(job)...) //nolint:gosec
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w: %s", c.binary, job.OutputPath, err, stderrTail(stderr.String()))
	}
	return nil
}

func buildArgs(job domain.EncodeJob) []string {
	bitrate := job.BitrateKbps
	if bitrate <= 0 {
		bitrate = defaultBitrateKbps
	}

	args := []string{"-y", "-hide_banner", "-loglevel", "error", "-i", job.InputPath}
	if job.StripMetadata {
		args = append(args, "-map_metadata", "-1")
	}

	// sorted so the invocation is deterministic for a given job
	fields := make([]string, 0, len(job.Metadata))
	for field := range job.Metadata {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		args = append(args, "-metadata", fmt.Sprintf("%s=%s", field, job.Metadata[field]))
	}

	args = append(args, "-codec:a", "libmp3lame", "-b:a", fmt.Sprintf("%dk", bitrate), job.OutputPath)
	return args
}

const stderrTailLines = 5

func stderrTail(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) > stderrTailLines {
		lines = lines[len(lines)-stderrTailLines:]
	}
	return strings.Join(lines, " | ")
}
