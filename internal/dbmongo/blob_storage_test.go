package dbmongo

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"minisocial/internal/config"
)

// openTestStorage connects to the MongoDB named by MONGO_TEST_URI. Tests in
// this file are skipped when it is unset.
func openTestStorage(t *testing.T) *BlobStorage {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set, skipping blob storage integration tests")
	}

	cfg := &config.Config{
		MongoDB: config.MongoConfig{
			URI:      uri,
			Database: "minisocial_test",
		},
	}
	client, err := NewMongoConnection(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close(context.Background()) })

	return NewBlobStorage(client, "http://localhost:8081/media/", 30*time.Second)
}

func TestBlobStorage_UploadDownloadDelete(t *testing.T) {
	storage := openTestStorage(t)
	ctx := context.Background()

	content := []byte("fake png bytes")
	url, err := storage.Upload(ctx, "cat.png", "image/png", content)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "http://localhost:8081/media/"))

	fileID := url[strings.LastIndex(url, "/")+1:]
	require.NotEmpty(t, fileID)

	reader, stored, err := storage.Download(ctx, fileID)
	require.NoError(t, err)
	require.Equal(t, "image/png", stored.MimeType)
	require.Equal(t, int64(len(content)), stored.Size)
	// original filename survives behind the timestamp prefix
	require.True(t, strings.HasSuffix(stored.Filename, "_cat.png"))

	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.Equal(t, content, got)

	require.NoError(t, storage.Delete(ctx, fileID))

	_, _, err = storage.Download(ctx, fileID)
	require.Error(t, err)
}

func TestBlobStorage_DistinctObjectsPerUpload(t *testing.T) {
	storage := openTestStorage(t)
	ctx := context.Background()

	url1, err := storage.Upload(ctx, "same.png", "image/png", []byte("one"))
	require.NoError(t, err)
	url2, err := storage.Upload(ctx, "same.png", "image/png", []byte("two"))
	require.NoError(t, err)
	require.NotEqual(t, url1, url2)

	for _, url := range []string{url1, url2} {
		fileID := url[strings.LastIndex(url, "/")+1:]
		require.NoError(t, storage.Delete(ctx, fileID))
	}
}

func TestBlobStorage_DeleteRejectsBadID(t *testing.T) {
	storage := openTestStorage(t)

	err := storage.Delete(context.Background(), "not-a-hex-id")
	require.Error(t, err)
}
