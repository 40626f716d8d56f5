package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/siteforms/siteforms-api/internal/apperrors"
)

// maxUploadBytes caps how much of an upload or remote fetch is persisted.
const maxUploadBytes = 10 * 1024 * 1024

// extensionByContentType maps image content types to the stored file
// extension. The response Content-Type wins over whatever extension the
// source URL carried.
var extensionByContentType = map[string]string{
	"image/png":     "png",
	"image/jpeg":    "jpg",
	"image/jpg":     "jpg",
	"image/gif":     "gif",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
	"image/x-icon":  "ico",
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// UploadService writes uploaded images to local disk under a fixed directory
// and returns the public path for the caller to store. Filenames are
// timestamp-prefixed; collisions within the same millisecond are not
// handled.
type UploadService struct {
	uploadDir  string
	publicDir  string
	httpClient *http.Client
	logger     *zap.Logger
	now        func() time.Time
}

// NewUploadService creates an UploadService writing under uploadDir. The
// public path of a stored file is /uploads/<base of uploadDir>/<filename>,
// matching the static route that serves the parent of uploadDir.
func NewUploadService(uploadDir string, log *zap.Logger) *UploadService {
	return &UploadService{
		uploadDir:  uploadDir,
		publicDir:  path.Join("uploads", filepath.Base(filepath.Clean(uploadDir))),
		httpClient: &http.Client{Timeout: 20 * time.Second},
		logger:     log,
		now:        time.Now,
	}
}

// SaveFile persists a multipart upload and returns its public path.
func (s *UploadService) SaveFile(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", &apperrors.UploadError{Op: "read", Err: err}
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	ext := inferExtension(contentType, fileHeader.Filename)
	name := baseName(fileHeader.Filename)

	return s.write(file, name, ext)
}

// SaveFromURL fetches a remote image and persists it. The extension is
// inferred from the response Content-Type header, falling back to the URL
// path. Redirect handling is whatever the default HTTP client does.
func (s *UploadService) SaveFromURL(ctx context.Context, imageURL string) (string, error) {
	parsed, err := url.ParseRequestURI(imageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", &apperrors.UploadError{Op: "fetch", Err: fmt.Errorf("invalid image URL %q", imageURL)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", &apperrors.UploadError{Op: "fetch", Err: err}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", &apperrors.UploadError{Op: "fetch", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &apperrors.UploadError{Op: "fetch", Err: fmt.Errorf("remote returned status %d", resp.StatusCode)}
	}

	ext := inferExtension(resp.Header.Get("Content-Type"), parsed.Path)
	name := baseName(parsed.Path)

	return s.write(resp.Body, name, ext)
}

// write streams the bytes to a timestamp-prefixed file and returns the
// public path. Directory creation is idempotent.
func (s *UploadService) write(r io.Reader, name, ext string) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", &apperrors.UploadError{Op: "write", Err: errors.Wrap(err, "failed to create upload directory")}
	}

	filename := fmt.Sprintf("%d-%s.%s", s.now().UnixMilli(), name, ext)
	fullPath := filepath.Join(s.uploadDir, filename)

	out, err := os.Create(fullPath)
	if err != nil {
		return "", &apperrors.UploadError{Op: "write", Err: errors.Wrap(err, "failed to create file")}
	}
	defer out.Close()

	// Read one byte past the cap so an oversized source is detected instead
	// of being silently truncated.
	written, err := io.Copy(out, io.LimitReader(r, maxUploadBytes+1))
	if err != nil {
		os.Remove(fullPath)
		return "", &apperrors.UploadError{Op: "write", Err: errors.Wrap(err, "failed to write file")}
	}
	if written > maxUploadBytes {
		os.Remove(fullPath)
		return "", &apperrors.UploadError{Op: "write", Err: fmt.Errorf("image exceeds the %d byte limit", maxUploadBytes)}
	}

	s.logger.Info("Stored uploaded image",
		zap.String("path", fullPath),
		zap.Int64("bytes", written))

	return "/" + path.Join(s.publicDir, filename), nil
}

// inferExtension picks the stored extension from the content type, falling
// back to the extension of the source name, then to jpg.
func inferExtension(contentType, sourceName string) string {
	mediaType := contentType
	if idx := strings.Index(mediaType, ";"); idx >= 0 {
		mediaType = mediaType[:idx]
	}
	mediaType = strings.TrimSpace(strings.ToLower(mediaType))

	if ext, ok := extensionByContentType[mediaType]; ok {
		return ext
	}

	if ext := strings.TrimPrefix(strings.ToLower(path.Ext(sourceName)), "."); ext != "" {
		return ext
	}

	return "jpg"
}

// baseName sanitizes the original file name (without extension) for use in
// the stored filename.
func baseName(sourceName string) string {
	base := path.Base(sourceName)
	base = strings.TrimSuffix(base, path.Ext(base))
	base = unsafeFilenameChars.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-.")
	if base == "" || base == "/" {
		return "image"
	}
	return base
}
