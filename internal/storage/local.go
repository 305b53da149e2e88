package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalService stores images in a directory on local disk.
type LocalService struct {
	dir string
}

func NewLocalService(dir string) (*LocalService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalService{dir: filepath.Clean(dir)}, nil
}

// Save writes the image under a generated name and returns that name.
func (s *LocalService) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	_, copyErr := io.Copy(f, r)
	closeErr := f.Close()
	if copyErr != nil {
		return "", fmt.Errorf("write image file: %w", copyErr)
	}
	if closeErr != nil {
		return "", fmt.Errorf("close image file: %w", closeErr)
	}
	return name, nil
}

// Remove deletes a stored image. Refs that would escape the uploads
// directory are rejected.
func (s *LocalService) Remove(ctx context.Context, ref string) error {
	if strings.TrimSpace(ref) == "" {
		return fmt.Errorf("image ref is required")
	}

	target := filepath.Clean(filepath.Join(s.dir, ref))
	if rel, err := filepath.Rel(s.dir, target); err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("invalid image ref %q", ref)
	}

	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image file: %w", err)
	}
	return nil
}

var _ Service = (*LocalService)(nil)
