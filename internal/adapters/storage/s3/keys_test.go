package s3_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/projecthowly/beatstore-bot-sub000/internal/adapters/storage/s3"
)

func TestGenerateKey_UniqueOverManyCalls(t *testing.T) {
	// Arrange
	const calls = 10000
	seen := make(map[string]struct{}, calls)

	// Act
	for i := 0; i < calls; i++ {
		seen[s3.GenerateKey("beats", "master.wav")] = struct{}{}
	}

	// Assert
	assert.Len(t, seen, calls, "identical folder+filename must still produce distinct keys")
}

func TestGenerateKey_SanitizesBasename(t *testing.T) {
	// Act
	key := s3.GenerateKey("covers", "My Cover (final)!.PNG")

	// Assert
	assert.True(t, strings.HasPrefix(key, "covers/"))
	assert.True(t, strings.HasSuffix(key, "_My_Cover__final__.png"))
	assert.NotContains(t, key, " ")
	assert.NotContains(t, key, "(")
}

func TestGenerateKey_TrimsFolderSlashes(t *testing.T) {
	// Act
	key := s3.GenerateKey("/jay/beats/", "kick.wav")

	// Assert
	assert.True(t, strings.HasPrefix(key, "jay/beats/"))
	assert.False(t, strings.HasPrefix(key, "/"))
}

func TestGenerateKey_KeepsSafeCharacters(t *testing.T) {
	// Act
	key := s3.GenerateKey("stems", "drum-loop_140.v2.zip")

	// Assert
	assert.True(t, strings.HasSuffix(key, "_drum-loop_140.v2.zip"))
}

func TestMimeFor(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"beat.mp3", "audio/mpeg"},
		{"MASTER.WAV", "audio/wav"},
		{"take.flac", "audio/flac"},
		{"loop.ogg", "audio/ogg"},
		{"voice.m4a", "audio/mp4"},
		{"stems.zip", "application/zip"},
		{"stems.rar", "application/vnd.rar"},
		{"cover.jpg", "image/jpeg"},
		{"cover.jpeg", "image/jpeg"},
		{"cover.png", "image/png"},
		{"cover.gif", "image/gif"},
		{"cover.webp", "image/webp"},
		{"mystery.xyz", "application/octet-stream"},
		{"noextension", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, s3.MimeFor(tt.filename))
		})
	}
}
