package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImageService resolves prompt images stored on disk. Filenames are
// prefixed with the owning prompt's id so images can be found without a
// join table.
type ImageService struct {
	uploadDir string
	logger    *zap.SugaredLogger
}

// NewImageService creates a new ImageService rooted at uploadDir.
func NewImageService(uploadDir string, logger *zap.SugaredLogger) *ImageService {
	return &ImageService{uploadDir: uploadDir, logger: logger}
}

// ListPromptImages returns the relative URLs of all images uploaded for a
// prompt. Lookup is best-effort: any filesystem error is logged and an
// empty slice returned.
func (s *ImageService) ListPromptImages(promptID uint) []string {
	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warnw("failed to read uploads directory", "dir", s.uploadDir, "error", err)
		}
		return []string{}
	}

	prefix := fmt.Sprintf("%d_", promptID)
	urls := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), prefix) {
			urls = append(urls, "/uploads/images/"+entry.Name())
		}
	}
	return urls
}

// SaveUploadedFiles persists multipart uploads under unique names prefixed
// with the prompt id and returns their relative URLs.
func (s *ImageService) SaveUploadedFiles(files []*multipart.FileHeader, promptID uint) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		filename := fmt.Sprintf("%d_%s_%s", promptID, uuid.New().String(), sanitizeFilename(file.Filename))
		if err := s.writeFile(file, filepath.Join(s.uploadDir, filename)); err != nil {
			return urls, err
		}
		urls = append(urls, "/uploads/images/"+filename)
	}
	return urls, nil
}

func (s *ImageService) writeFile(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return nil
}

func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return '_'
		}
	}, filepath.Base(name))
}
