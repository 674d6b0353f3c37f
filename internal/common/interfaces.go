package common

import "context"

// BlobStore uploads raw image bytes to external storage and returns a URL
// safe to embed directly as an image source. Repeating a failed upload is
// safe; every call creates a distinct object. Delete removes a stored
// object by the ID the URL ends in.
type BlobStore interface {
	Upload(ctx context.Context, filename, mimeType string, data []byte) (string, error)
	Delete(ctx context.Context, fileID string) error
}
