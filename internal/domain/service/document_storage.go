// Package service defines interfaces for external collaborators the domain
// calls into (object storage, mail, token validation).
package service

import (
	"context"
	"io"
	"time"
)

// DocumentStorage abstracts the binary-object store holding compliance
// documents.
type DocumentStorage interface {
	// Upload stores an object at the given path.
	Upload(ctx context.Context, path string, body io.Reader, size int64, contentType string) error

	// Remove deletes the given objects. Missing objects are not an error.
	Remove(ctx context.Context, paths ...string) error

	// SignedURL mints a time-limited retrieval URL for a stored object.
	SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)

	// ObjectPath recovers the storage path from a previously minted URL by
	// stripping the endpoint and bucket prefix. Returns false when the URL
	// does not point into this store.
	ObjectPath(rawURL string) (string, bool)
}
