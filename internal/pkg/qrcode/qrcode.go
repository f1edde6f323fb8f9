package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

// PNG size bounds in pixels
const (
	MinSize     = 128
	MaxSize     = 1024
	DefaultSize = 256
)

// Service builds event links and the QR codes that encode them
type Service struct {
	appURL       string // e.g. https://wedibox.app
	qrServiceURL string // e.g. https://api.qrserver.com/v1/create-qr-code/
}

// NewService creates a QR service
func NewService(appURL, qrServiceURL string) *Service {
	return &Service{
		appURL:       strings.TrimRight(appURL, "/"),
		qrServiceURL: qrServiceURL,
	}
}

// ShareableLink returns the guest page URL for an event
func (s *Service) ShareableLink(eventID string) string {
	return fmt.Sprintf("%s/event/%s", s.appURL, eventID)
}

// ImageURL returns a URL of the external QR service rendering link at 200x200
func (s *Service) ImageURL(link string) string {
	sep := "?"
	if strings.Contains(s.qrServiceURL, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%ssize=200x200&data=%s", s.qrServiceURL, sep, url.QueryEscape(link))
}

// PNG renders content as a QR code PNG. size is clamped to [MinSize, MaxSize].
func (s *Service) PNG(content string, size int) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, ClampSize(size))
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}
	return png, nil
}

// ClampSize maps a requested size into the allowed range; 0 means default
func ClampSize(size int) int {
	switch {
	case size == 0:
		return DefaultSize
	case size < MinSize:
		return MinSize
	case size > MaxSize:
		return MaxSize
	default:
		return size
	}
}
