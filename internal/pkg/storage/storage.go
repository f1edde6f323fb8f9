package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage is the object store behind photo, gallery and document uploads.
type Storage interface {
	// Put stores a file under key.
	Put(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get opens a stored file. The caller closes the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a file. Returns nil if the file doesn't exist.
	Delete(ctx context.Context, key string) error

	// Exists reports whether key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// GetURL returns the public URL for key.
	GetURL(key string) string
}

// Driver names accepted by New
const (
	DriverLocal = "local"
	DriverS3    = "s3"
	DriverR2    = "r2"
)

// Config selects and configures a storage backend
type Config struct {
	Driver string

	LocalPath string
	LocalURL  string

	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3PublicURL string

	R2 R2Config
}

// New builds the backend named by cfg.Driver
func New(cfg Config) (Storage, error) {
	switch cfg.Driver {
	case DriverLocal, "":
		return NewLocalStorage(cfg.LocalPath, cfg.LocalURL)
	case DriverS3:
		return NewS3Storage(cfg)
	case DriverR2:
		return NewR2Storage(cfg.R2)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}
