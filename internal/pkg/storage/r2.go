package storage

import (
	"fmt"
)

// R2Config holds Cloudflare R2 connection configuration
type R2Config struct {
	AccountID       string
	AccessKeyID     string
	AccessKeySecret string
	BucketName      string
	PublicURL       string // e.g. https://cdn.hafiportrait.com
}

// NewR2Storage creates an S3 client pointed at Cloudflare R2
func NewR2Storage(cfg R2Config) (*S3Storage, error) {
	if cfg.AccountID == "" || cfg.AccessKeyID == "" || cfg.AccessKeySecret == "" {
		return nil, fmt.Errorf("r2: account id and credentials are required")
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		// Works only if public access is enabled on the bucket
		publicURL = fmt.Sprintf("https://pub-%s.r2.dev", cfg.AccountID)
	}

	return NewS3Storage(Config{
		S3Endpoint:  fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID),
		S3Region:    "auto",
		S3Bucket:    cfg.BucketName,
		S3AccessKey: cfg.AccessKeyID,
		S3SecretKey: cfg.AccessKeySecret,
		S3PublicURL: publicURL,
	})
}
