// ABOUTME: FileInspector implementation using os.Stat and content sniffing
// ABOUTME: Falls back to the extension table when sniffing is inconclusive

package standard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"podcast-feed-api/core/domain"
)

// Inspector reports size and MIME type of local media files.
type Inspector struct{}

// NewInspector creates a file inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect returns the byte size and best-guess MIME type for the file
// at path. The MIME type comes from content sniffing; when sniffing
// yields a generic result the known extension table decides instead.
func (i *Inspector) Inspect(path string) (int64, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, "", fmt.Errorf("cannot stat file: %w", err)
	}
	if info.IsDir() {
		return 0, "", fmt.Errorf("'%s' is a directory, not a media file", path)
	}

	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return 0, "", fmt.Errorf("cannot detect MIME type: %w", err)
	}

	mime := normalize(detected.String())
	if byExt, ok := extensionMime(path); ok && isGeneric(mime) {
		mime = byExt
	}

	return info.Size(), mime, nil
}

// normalize strips any parameters from a detected MIME type, e.g.
// "text/plain; charset=utf-8" -> "text/plain".
func normalize(mime string) string {
	if idx := strings.Index(mime, ";"); idx >= 0 {
		mime = mime[:idx]
	}
	return strings.TrimSpace(mime)
}

// extensionMime looks up the MIME type for the file's extension in the
// fixed correspondence table.
func extensionMime(path string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	mime, ok := domain.MimeTypeByExtension[domain.FileExtension(ext)]
	return string(mime), ok
}

// isGeneric reports whether a sniffed MIME type carries no useful
// information about the media format.
func isGeneric(mime string) bool {
	switch mime {
	case "", "application/octet-stream", "text/plain":
		return true
	}
	return false
}
