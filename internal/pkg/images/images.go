package images

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyImage        = errors.New("image is empty")
	ErrInvalidDataURI    = errors.New("image must be a base64 data URI")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// extensions by declared media type; anything else is rejected
var extByMime = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Store decodes base64 data URIs ("data:image/png;base64,....")
// into files under a media directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes the decoded image to disk and returns the path
// relative to the media directory.
func (s *Store) Save(dataURI string) (string, error) {
	if strings.TrimSpace(dataURI) == "" {
		return "", ErrEmptyImage
	}

	mime, payload, ok := splitDataURI(dataURI)
	if !ok {
		return "", ErrInvalidDataURI
	}

	ext, ok := extByMime[mime]
	if !ok {
		return "", ErrUnsupportedFormat
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	if len(raw) == 0 {
		return "", ErrEmptyImage
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), raw, 0o644); err != nil {
		return "", err
	}

	return name, nil
}

func splitDataURI(uri string) (mime, payload string, ok bool) {
	if !strings.HasPrefix(uri, "data:") {
		return "", "", false
	}
	rest := strings.TrimPrefix(uri, "data:")
	head, payload, found := strings.Cut(rest, ",")
	if !found {
		return "", "", false
	}
	mime = strings.TrimSuffix(head, ";base64")
	if mime == head {
		// only base64 payloads are accepted
		return "", "", false
	}
	return mime, payload, true
}
