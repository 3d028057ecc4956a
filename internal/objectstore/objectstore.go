// Package objectstore defines the contract for binary image assets and the
// payload rules every implementation enforces. Keys are generated here so
// fakes and the S3 implementation agree on their shape.
package objectstore

import (
	"context"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/srikarthikeya/caterers/internal/domain"
	"github.com/srikarthikeya/caterers/internal/errs"
)

// Store is the object store boundary.
type Store interface {
	// Upload validates the payload, stores it under a fresh key below
	// prefix and returns the key.
	Upload(ctx context.Context, data []byte, contentType, filename, prefix string) (string, error)

	// Replace stores a new payload under the same prefix as existingKey
	// and removes the old object. Fails with a bad-request error when
	// existingKey does not exist. The gallery service does not use it:
	// it sequences Upload and Delete around the record commit itself so
	// the record never references a deleted object.
	Replace(ctx context.Context, existingKey string, data []byte, contentType, filename string) (string, error)

	// Delete removes the object. Callers are expected to hold the key;
	// deleting an unknown key is not part of any flow here.
	Delete(ctx context.Context, key string) error

	// PresignedURL returns a time-limited read URL. The key is not
	// checked for existence.
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	// Exists probes for the key.
	Exists(ctx context.Context, key string) (bool, error)
}

// MaxImageSize is the upload payload ceiling.
const MaxImageSize = 10 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ValidateImage rejects empty or oversized payloads and filenames without
// an accepted image extension.
func ValidateImage(data []byte, filename string) error {
	if len(data) == 0 {
		return errs.BadRequest("file cannot be empty")
	}
	if len(data) > MaxImageSize {
		return errs.BadRequest("file size exceeds maximum limit of 10MB")
	}
	if !allowedExtensions[strings.ToLower(path.Ext(filename))] {
		return errs.BadRequest("invalid file type, allowed: jpg, jpeg, png, gif, webp")
	}
	return nil
}

// GenerateKey builds a fresh object key: prefix + random UUID + the
// original file's extension.
func GenerateKey(prefix, filename string) string {
	return prefix + uuid.NewString() + path.Ext(filename)
}

// KeyPrefix returns everything up to and including the last path
// separator of key, or "" when key has none.
func KeyPrefix(key string) string {
	idx := strings.LastIndexByte(key, '/')
	if idx < 0 {
		return ""
	}
	return key[:idx+1]
}

// PrefixFor maps a gallery type to its fixed destination prefix.
func PrefixFor(t domain.GalleryType) string {
	switch t {
	case domain.GalleryTypeMenu:
		return "menu/"
	case domain.GalleryTypeServices:
		return "services/"
	case domain.GalleryTypeTeam:
		return "team/"
	case domain.GalleryTypeReviews:
		return "reviews/"
	default:
		return "gallery/"
	}
}
