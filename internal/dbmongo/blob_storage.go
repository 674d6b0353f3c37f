package dbmongo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlobStorage stores post images in GridFS and addresses them by ObjectID
// hex. It implements common.BlobStore; the public URL it returns is served
// by the media server (GET /media/{fileId}).
type BlobStorage struct {
	gridFS        *gridfs.Bucket
	baseURL       string
	uploadTimeout time.Duration
}

func NewBlobStorage(mongoClient *MongoClient, baseURL string, uploadTimeout time.Duration) *BlobStorage {
	return &BlobStorage{
		gridFS:        mongoClient.GridFS,
		baseURL:       baseURL,
		uploadTimeout: uploadTimeout,
	}
}

// StoredFile describes a stored image, rebuilt from GridFS metadata when
// the media server streams it back.
type StoredFile struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"mime_type"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Upload writes the image bytes into GridFS and returns the public URL.
// The stored filename carries a nanosecond timestamp prefix so concurrent
// uploads of files sharing an original name never collide. The call is
// bounded by the configured upload timeout.
func (bs *BlobStorage) Upload(ctx context.Context, filename, mimeType string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, bs.uploadTimeout)
	defer cancel()

	stored := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filename)
	metadata := bson.M{
		"mime_type":   mimeType,
		"uploaded_at": time.Now(),
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := bs.gridFS.OpenUploadStream(stored, opts)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	defer stream.Close()

	done := make(chan error, 1)
	go func() {
		_, err := io.Copy(stream, bytes.NewReader(data))
		done <- err
	}()
	select {
	case err := <-done:
		if err != nil {
			return "", fmt.Errorf("file copy failed: %w", err)
		}
	case <-ctx.Done():
		return "", fmt.Errorf("upload timed out: %w", ctx.Err())
	}

	fileID, ok := stream.FileID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected GridFS file ID type %T", stream.FileID)
	}
	return bs.baseURL + fileID.Hex(), nil
}

// Download streams a stored image back by its ObjectID hex.
func (bs *BlobStorage) Download(ctx context.Context, fileID string) (io.Reader, *StoredFile, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid file ID: %w", err)
	}

	stream, err := bs.gridFS.OpenDownloadStream(objectID)
	if err != nil {
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}

	fileInfo := stream.GetFile()
	var metadata bson.M
	if fileInfo.Metadata != nil {
		_ = bson.Unmarshal(fileInfo.Metadata, &metadata)
	}

	stored := &StoredFile{
		ID:         fileID,
		Filename:   fileInfo.Name,
		Size:       fileInfo.Length,
		MimeType:   getStringFromMap(metadata, "mime_type"),
		UploadedAt: fileInfo.UploadDate,
	}
	return stream, stored, nil
}

func (bs *BlobStorage) Delete(ctx context.Context, fileID string) error {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return fmt.Errorf("invalid file ID: %w", err)
	}
	return bs.gridFS.Delete(objectID)
}

func getStringFromMap(m bson.M, key string) string {
	if m == nil {
		return ""
	}
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
