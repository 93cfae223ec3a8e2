package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/prefeitura-rio/app-entregadores/internal/config"
	"github.com/prefeitura-rio/app-entregadores/internal/logging"
	"go.uber.org/zap"
)

// AttachmentStore persists uploaded document content and returns a stable
// reference for later retrieval. Acceptability of an attachment (extension,
// size) is decided by the intake pipeline before anything is stored.
type AttachmentStore interface {
	Save(ctx context.Context, field, filename string, content io.Reader) (string, error)
}

// DiskAttachmentStore writes attachments to a directory on local disk
type DiskAttachmentStore struct {
	dir    string
	logger *logging.SafeLogger
}

// NewDiskAttachmentStore creates the store, ensuring the directory exists
func NewDiskAttachmentStore(dir string, logger *logging.SafeLogger) (*DiskAttachmentStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskAttachmentStore{dir: dir, logger: logger}, nil
}

// Global attachment store instance
var AttachmentStoreInstance AttachmentStore

// InitAttachmentStore initializes the global attachment store instance
func InitAttachmentStore() {
	store, err := NewDiskAttachmentStore(config.AppConfig.UploadDir, logging.Logger)
	if err != nil {
		logging.Logger.Fatal("failed to initialize attachment store", zap.Error(err))
		return
	}
	AttachmentStoreInstance = store
	logging.Logger.Info("attachment store initialized",
		zap.String("dir", config.AppConfig.UploadDir))
}

// Save writes the content under a sanitized filename and returns it as the
// stable reference
func (s *DiskAttachmentStore) Save(_ context.Context, field, filename string, content io.Reader) (string, error) {
	ref := SanitizeFilename(filename)
	if ref == "" {
		return "", fmt.Errorf("attachment %q has no usable filename", field)
	}

	path := filepath.Join(s.dir, ref)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file %q: %w", path, err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, content)
	if err != nil {
		return "", fmt.Errorf("failed to save attachment %q: %w", ref, err)
	}

	s.logger.Debug("attachment stored",
		zap.String("field", field),
		zap.String("ref", ref),
		zap.Int64("bytes", written))

	return ref, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// SanitizeFilename reduces an uploaded filename to a safe basename, dropping
// path components and replacing anything outside a conservative character set
func SanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == ".." || base == "/" {
		return ""
	}
	sanitized := unsafeFilenameChars.ReplaceAllString(base, "_")
	return strings.Trim(sanitized, "._")
}
