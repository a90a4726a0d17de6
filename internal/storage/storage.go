package storage

import (
	"context"
	"fmt"
	"io"

	"photoblog/internal/config"
)

// Storage persists an uploaded image and returns the public URL path
// clients use to fetch it back.
type Storage interface {
	SaveImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error)
}

func NewStorage(cfg *config.Config) (Storage, error) {
	switch cfg.StorageBackend {
	case "disk":
		return NewDiskStorage(cfg.UploadDir)
	case "minio":
		return NewMinIOStorage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}
}
