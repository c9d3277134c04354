package blobs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Service stores post attachments on disk and hands back the stable reference
// path stored alongside the post. Callers only ever see the opaque path; the
// directory layout is this package's business.
type Service interface {
	// Store validates and writes an attachment, returning its reference path
	// (e.g. /uploads/attachment-<id>.png)
	Store(ctx context.Context, r io.Reader, suggestedName string) (string, error)

	// Remove deletes a stored attachment by its reference path. Removing a
	// path that no longer exists is a no-op, so cleanup can run on any
	// failure path without double-delete worries.
	Remove(ctx context.Context, refPath string) error
}

type diskBlobService struct {
	dir       string
	publicDir string
	logger    *slog.Logger
}

// NewDiskBlobService creates a blob service writing under dir. The directory
// is created if missing. publicDir is the URL path prefix under which the
// files are served.
func NewDiskBlobService(dir, publicDir string, logger *slog.Logger) (Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &diskBlobService{
		dir:       dir,
		publicDir: publicDir,
		logger:    logger,
	}, nil
}

// Store reads at most MaxUploadSize bytes, sniffs the content type, and
// writes the blob under a fresh unguessable name. The suggested name only
// contributes a log line; the stored name never derives from caller input.
func (s *diskBlobService) Store(ctx context.Context, r io.Reader, suggestedName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Read one byte past the cap so oversize uploads are detectable
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read attachment: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmptyBlob
	}
	if len(data) > MaxUploadSize {
		return "", ErrBlobTooLarge
	}

	kind := mimetype.Detect(data)
	ext, ok := allowedTypes[kind.String()]
	if !ok {
		s.logger.Debug("attachment rejected",
			"detected", kind.String(),
			"suggested_name", suggestedName)
		return "", ErrUnsupportedType
	}

	filename := "attachment-" + uuid.NewString() + ext
	path := filepath.Join(s.dir, filename)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write attachment: %w", err)
	}

	s.logger.Info("attachment stored",
		"file", filename,
		"bytes", len(data),
		"type", kind.String())

	return s.publicDir + "/" + filename, nil
}

// Remove deletes an attachment previously returned by Store. Only paths of
// that shape are accepted; anything pointing outside the upload directory is
// rejected.
func (s *diskBlobService) Remove(ctx context.Context, refPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, ok := strings.CutPrefix(refPath, s.publicDir+"/")
	if !ok || name == "" || name != filepath.Base(name) {
		return fmt.Errorf("not a stored attachment path: %q", refPath)
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to remove attachment: %w", err)
	}

	s.logger.Info("attachment removed", "file", name)
	return nil
}
