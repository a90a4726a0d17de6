package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DiskStorage writes uploads into a local directory that the server exposes
// under /uploads/. Filenames are prefixed with the upload time in
// milliseconds so two uploads of the same file never collide.
type DiskStorage struct {
	dir string
}

func NewDiskStorage(dir string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStorage{dir: dir}, nil
}

func (s *DiskStorage) SaveImage(_ context.Context, fileName string, file io.Reader, _ int64) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFileName(fileName))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return "/uploads/" + name, nil
}

// sanitizeFileName strips any path components from a client-supplied name.
func sanitizeFileName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "upload"
	}
	return name
}
