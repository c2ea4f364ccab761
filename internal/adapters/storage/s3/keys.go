package s3

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9_\-.]`)

// GenerateKey builds a collision-free object key:
// {folder}/{unixMillis}_{randomSuffix}_{sanitizedBase}{ext}. The millisecond
// timestamp plus the random suffix makes collisions negligible even for
// concurrent uploads of identically named files; no existence check is done.
func GenerateKey(folder, originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	base := strings.TrimSuffix(filepath.Base(originalFilename), filepath.Ext(originalFilename))
	sanitized := unsafeKeyChars.ReplaceAllString(base, "_")

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]

	return fmt.Sprintf("%s/%d_%s_%s%s",
		strings.Trim(folder, "/"),
		time.Now().UnixMilli(),
		suffix,
		sanitized,
		ext,
	)
}

// GenerateKey resolves a destination key for an upload, see the package
// function of the same name
func (g *Gateway) GenerateKey(folder, originalFilename string) string {
	return GenerateKey(folder, originalFilename)
}

var contentTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".flac": "audio/flac",
	".ogg":  "audio/ogg",
	".m4a":  "audio/mp4",
	".zip":  "application/zip",
	".rar":  "application/vnd.rar",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// MimeFor returns the content type for a filename by extension. Unknown
// extensions fall back to a generic binary type rather than erroring.
func MimeFor(filename string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// MimeFor returns the content type for a filename, see the package function
// of the same name
func (g *Gateway) MimeFor(filename string) string {
	return MimeFor(filename)
}
