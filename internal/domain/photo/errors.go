package photo

import "errors"

var (
	ErrPhotoNotFound  = errors.New("photo not found")
	ErrAccessDenied   = errors.New("valid access code required for this album")
	ErrAdminOnlyAlbum = errors.New("album is reserved for the studio")
	ErrInvalidAlbum   = errors.New("invalid album name")
	ErrInvalidCounter = errors.New("likes cannot be negative")
	ErrMissingFile    = errors.New("photo file is required")
)
