package photo

import (
	"database/sql"
	"time"
)

// Known album names. Albums are free text; these carry special rules.
const (
	AlbumOfficial   = "Official"
	AlbumGuest      = "Tamu"
	AlbumBridesmaid = "Bridesmaid"
	AlbumPrivate    = "Private"
	AlbumHomepage   = "homepage"

	DefaultAlbum    = AlbumGuest
	DefaultUploader = "Anonymous"
)

// Photo is an uploaded image belonging to an event album
type Photo struct {
	ID                string         `db:"id"`
	EventID           string         `db:"event_id"`
	Filename          string         `db:"filename"` // storage key
	OriginalName      string         `db:"original_name"`
	URL               string         `db:"url"`
	ThumbnailURL      string         `db:"thumbnail_url"`
	UploaderName      sql.NullString `db:"uploader_name"`
	AlbumName         string         `db:"album_name"`
	Likes             int            `db:"likes"`
	MimeType          string         `db:"mime_type"`
	SizeBytes         int64          `db:"size_bytes"`
	ThumbnailAttempts int            `db:"thumbnail_attempts"`
	UploadedAt        time.Time      `db:"uploaded_at"`
}

// Uploader returns the uploader name or the anonymous default
func (p *Photo) Uploader() string {
	if p.UploaderName.Valid && p.UploaderName.String != "" {
		return p.UploaderName.String
	}
	return DefaultUploader
}

// DisplayURL prefers the thumbnail when one exists
func (p *Photo) DisplayURL() string {
	if p.ThumbnailURL != "" {
		return p.ThumbnailURL
	}
	return p.URL
}
