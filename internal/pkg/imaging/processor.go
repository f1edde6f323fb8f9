package imaging

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/disintegration/imaging"
)

// Config for thumbnail rendering
type Config struct {
	ThumbSize int // longest side in pixels (default 400)
	Quality   int // JPEG quality 1-100 (default 85)
}

// DefaultConfig returns default processing config
func DefaultConfig() Config {
	return Config{
		ThumbSize: 400,
		Quality:   85,
	}
}

// Thumbnail is a rendered preview
type Thumbnail struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
}

// Processor renders gallery thumbnails
type Processor struct {
	config Config
}

// NewProcessor creates image processor
func NewProcessor(config Config) *Processor {
	def := DefaultConfig()
	if config.ThumbSize <= 0 {
		config.ThumbSize = def.ThumbSize
	}
	if config.Quality <= 0 || config.Quality > 100 {
		config.Quality = def.Quality
	}
	return &Processor{config: config}
}

// Thumbnail decodes an uploaded image (honouring EXIF orientation) and fits
// it into a ThumbSize square, encoded as JPEG.
func (p *Processor) Thumbnail(data []byte) (*Thumbnail, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := img
	b := img.Bounds()
	if b.Dx() > p.config.ThumbSize || b.Dy() > p.config.ThumbSize {
		thumb = imaging.Fit(img, p.config.ThumbSize, p.config.ThumbSize, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(p.config.Quality)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return &Thumbnail{
		Data:        buf.Bytes(),
		ContentType: "image/jpeg",
		Width:       thumb.Bounds().Dx(),
		Height:      thumb.Bounds().Dy(),
	}, nil
}

// ThumbnailKey derives the thumbnail object key from the original key:
// events/e1/p1.png -> events/e1/p1_thumb.jpg
func ThumbnailKey(originalKey string) string {
	return strings.TrimSuffix(originalKey, path.Ext(originalKey)) + "_thumb.jpg"
}
