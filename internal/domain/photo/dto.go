package photo

import (
	"io"
	"time"
)

// AddPhotoRequest registers an already stored file
type AddPhotoRequest struct {
	Filename     string `json:"filename" validate:"required,max=512"`
	OriginalName string `json:"originalName" validate:"required,max=255"`
	URL          string `json:"url" validate:"required,url,max=2048"`
	UploaderName string `json:"uploaderName" validate:"max=100"`
	AlbumName    string `json:"albumName" validate:"album"`
}

// UploadInput is a multipart upload after HTTP parsing
type UploadInput struct {
	EventID      string
	File         io.Reader
	OriginalName string
	UploaderName string
	AlbumName    string

	// Access proof: the code typed by the guest, or the event id unlocked by
	// a guest token, or an authenticated admin.
	AccessCode   string
	GuestEventID string
	IsAdmin      bool
}

// LikesRequest for PATCH /photos/{id}/likes. Delta is preferred; Likes sets
// the absolute value.
type LikesRequest struct {
	Delta *int `json:"delta" validate:"omitempty,gte=-100,lte=100"`
	Likes *int `json:"likes" validate:"omitempty,gte=0"`
}

// PhotoResponse represents photo in API response
type PhotoResponse struct {
	ID           string    `json:"id"`
	EventID      string    `json:"eventId"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	UploaderName string    `json:"uploaderName"`
	AlbumName    string    `json:"albumName"`
	Likes        int       `json:"likes"`
	MimeType     string    `json:"mimeType,omitempty"`
	SizeBytes    int64     `json:"sizeBytes,omitempty"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// PhotoResponseFromEntity converts entity to response DTO
func PhotoResponseFromEntity(p *Photo) *PhotoResponse {
	return &PhotoResponse{
		ID:           p.ID,
		EventID:      p.EventID,
		Filename:     p.Filename,
		OriginalName: p.OriginalName,
		URL:          p.URL,
		ThumbnailURL: p.DisplayURL(),
		UploaderName: p.Uploader(),
		AlbumName:    p.AlbumName,
		Likes:        p.Likes,
		MimeType:     p.MimeType,
		SizeBytes:    p.SizeBytes,
		UploadedAt:   p.UploadedAt,
	}
}

// PhotoResponsesFromEntities converts a slice
func PhotoResponsesFromEntities(photos []*Photo) []*PhotoResponse {
	items := make([]*PhotoResponse, len(photos))
	for i, p := range photos {
		items[i] = PhotoResponseFromEntity(p)
	}
	return items
}
