package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/siteforms/siteforms-api/internal/apperrors"
)

func TestInferExtension(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		sourceName  string
		expected    string
	}{
		{"content type wins over URL extension", "image/png", "/photos/pic.jpeg", "png"},
		{"content type with charset parameter", "image/svg+xml; charset=utf-8", "", "svg"},
		{"jpeg maps to jpg", "image/jpeg", "", "jpg"},
		{"unknown content type falls back to URL path", "application/octet-stream", "/images/logo.webp", "webp"},
		{"no content type uses URL extension", "", "/a/b/photo.GIF", "gif"},
		{"nothing to infer defaults to jpg", "", "/download", "jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, inferExtension(tt.contentType, tt.sourceName))
		})
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/photos/My Photo (1).png", "My-Photo-1"},
		{"simple.jpg", "simple"},
		{"../../etc/passwd", "passwd"},
		{"", "image"},
		{"/", "image"},
		{"???.png", "image"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, baseName(tt.input))
		})
	}
}

func newTestUploadService(t *testing.T) *UploadService {
	t.Helper()
	svc := NewUploadService(filepath.Join(t.TempDir(), "images"), zap.NewNop())
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return svc
}

func TestSaveFromURL_UsesContentTypeExtension(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("not-really-a-png"))
	}))
	defer ts.Close()

	svc := newTestUploadService(t)

	publicPath, err := svc.SaveFromURL(context.Background(), ts.URL+"/gallery/photo.jpeg")
	require.NoError(t, err)

	// Content-Type wins regardless of the source URL's own extension.
	assert.True(t, strings.HasSuffix(publicPath, ".png"), "got %q", publicPath)
	assert.Equal(t, "/uploads/images/1700000000000-photo.png", publicPath)

	stored := filepath.Join(svc.uploadDir, "1700000000000-photo.png")
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "not-really-a-png", string(data))
}

func TestSaveFromURL_FetchFailures(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	svc := newTestUploadService(t)

	tests := []struct {
		name     string
		imageURL string
	}{
		{"remote 404", ts.URL + "/missing.png"},
		{"invalid URL", "not a url"},
		{"unsupported scheme", "ftp://example.com/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SaveFromURL(context.Background(), tt.imageURL)

			var uploadErr *apperrors.UploadError
			require.ErrorAs(t, err, &uploadErr)
			assert.Equal(t, "fetch", uploadErr.Op)
		})
	}
}

func TestSaveFile_MultipartUpload(t *testing.T) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "team photo.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	fileHeader, err := func() (*multipart.FileHeader, error) {
		if err := req.ParseMultipartForm(1 << 20); err != nil {
			return nil, err
		}
		return req.MultipartForm.File["image"][0], nil
	}()
	require.NoError(t, err)

	svc := newTestUploadService(t)

	publicPath, err := svc.SaveFile(context.Background(), fileHeader)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/images/1700000000000-team-photo.jpg", publicPath)

	data, err := os.ReadFile(filepath.Join(svc.uploadDir, "1700000000000-team-photo.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestWrite_RejectsOversizedImage(t *testing.T) {
	svc := newTestUploadService(t)

	oversized := strings.NewReader(strings.Repeat("x", maxUploadBytes+1024))
	_, err := svc.write(oversized, "huge", "png")

	var uploadErr *apperrors.UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, "write", uploadErr.Op)

	// Nothing is left behind: a truncated file must never get a public URL.
	entries, readErr := os.ReadDir(svc.uploadDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestWrite_AcceptsImageAtSizeLimit(t *testing.T) {
	svc := newTestUploadService(t)

	atLimit := strings.NewReader(strings.Repeat("x", maxUploadBytes))
	publicPath, err := svc.write(atLimit, "big", "png")
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(svc.uploadDir, "1700000000000-big.png"))
	require.NoError(t, err)
	assert.Equal(t, int64(maxUploadBytes), info.Size())
	assert.Equal(t, "/uploads/images/1700000000000-big.png", publicPath)
}

func TestPublicPathFollowsUploadDir(t *testing.T) {
	svc := NewUploadService(filepath.Join(t.TempDir(), "data", "img"), zap.NewNop())
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	publicPath, err := svc.write(strings.NewReader("png-bytes"), "pic", "png")
	require.NoError(t, err)

	// The URL prefix tracks the configured directory so the static route
	// serving the parent of uploadDir resolves it.
	assert.Equal(t, "/uploads/img/1700000000000-pic.png", publicPath)

	_, err = os.Stat(filepath.Join(svc.uploadDir, "1700000000000-pic.png"))
	require.NoError(t, err)
}

func TestWrite_DirectoryCreationIsIdempotent(t *testing.T) {
	svc := newTestUploadService(t)

	// First write creates the directory, second reuses it.
	_, err := svc.write(strings.NewReader("a"), "one", "png")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.UnixMilli(1700000000001) }
	_, err = svc.write(strings.NewReader("b"), "two", "png")
	require.NoError(t, err)

	entries, err := os.ReadDir(svc.uploadDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
