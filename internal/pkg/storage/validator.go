package storage

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrFileTooLarge    = errors.New("file exceeds maximum size")
	ErrInvalidMimeType = errors.New("file type not allowed")
	ErrEmptyFile       = errors.New("file is empty")
)

// Upload categories
const (
	CategoryImage    = "image"
	CategoryDocument = "document"
)

// AllowedMimeTypes lists sniffed content types per category. A trailing
// "/*" matches any subtype.
var AllowedMimeTypes = map[string][]string{
	CategoryImage:    {"image/*"},
	CategoryDocument: {"application/pdf"},
}

// DefaultMaxFileSize is the upload limit when none is configured (10 MB)
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// ValidateFile reads at most maxSize+1 bytes, then checks size and the
// content type detected from magic bytes against the category.
func ValidateFile(reader io.Reader, category string, maxSize int64) ([]byte, string, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	data, err := io.ReadAll(io.LimitReader(reader, maxSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		return nil, "", ErrEmptyFile
	}
	if int64(len(data)) > maxSize {
		return nil, "", ErrFileTooLarge
	}

	// "image/jpeg; charset=utf-8" -> "image/jpeg"
	mimeType := http.DetectContentType(data)
	if idx := strings.Index(mimeType, ";"); idx != -1 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}

	allowedTypes, ok := AllowedMimeTypes[category]
	if !ok {
		return nil, "", fmt.Errorf("unknown category: %s", category)
	}
	if !mimeAllowed(mimeType, allowedTypes) {
		return nil, "", ErrInvalidMimeType
	}

	return data, mimeType, nil
}

func mimeAllowed(mimeType string, allowed []string) bool {
	for _, t := range allowed {
		if strings.HasSuffix(t, "/*") {
			if strings.HasPrefix(mimeType, strings.TrimSuffix(t, "*")) {
				return true
			}
			continue
		}
		if t == mimeType {
			return true
		}
	}
	return false
}

// GetExtensionForMime returns the file extension for a MIME type
func GetExtensionForMime(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	case "image/bmp":
		return ".bmp"
	case "application/pdf":
		return ".pdf"
	default:
		return ""
	}
}
