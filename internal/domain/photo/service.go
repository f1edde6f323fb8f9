package photo

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hafiportrait/wedibox-api/internal/domain/event"
	"github.com/hafiportrait/wedibox-api/internal/pkg/imaging"
	"github.com/hafiportrait/wedibox-api/internal/pkg/storage"
)

const (
	DefaultRecentLimit = 8
	MaxRecentLimit     = 50

	// MaxThumbnailAttempts bounds retries by the thumbnail worker
	MaxThumbnailAttempts = 3
)

// EventLookup resolves regular events
type EventLookup interface {
	Get(ctx context.Context, id string) (*event.Event, error)
}

// Service handles photo business logic
type Service struct {
	repo      Repository
	events    EventLookup
	storage   storage.Storage
	processor *imaging.Processor
	publisher ThumbnailPublisher
	maxSize   int64
}

// NewService creates photo service. publisher may be nil.
func NewService(repo Repository, events EventLookup, store storage.Storage, processor *imaging.Processor, publisher ThumbnailPublisher, maxSize int64) *Service {
	if maxSize <= 0 {
		maxSize = storage.DefaultMaxFileSize
	}
	return &Service{
		repo:      repo,
		events:    events,
		storage:   store,
		processor: processor,
		publisher: publisher,
		maxSize:   maxSize,
	}
}

// Add records a photo whose file is already stored
func (s *Service) Add(ctx context.Context, eventID string, req *AddPhotoRequest) (*Photo, error) {
	if _, err := s.events.Get(ctx, eventID); err != nil {
		return nil, err
	}

	p := &Photo{
		ID:           uuid.New().String(),
		EventID:      eventID,
		Filename:     req.Filename,
		OriginalName: req.OriginalName,
		URL:          req.URL,
		UploaderName: uploaderName(req.UploaderName),
		AlbumName:    albumName(req.AlbumName),
		UploadedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Upload validates access and the file, stores the original and a
// thumbnail, and records the photo.
func (s *Service) Upload(ctx context.Context, in *UploadInput) (*Photo, error) {
	album := albumName(in.AlbumName)

	e, err := s.events.Get(ctx, in.EventID)
	if err != nil {
		return nil, err
	}

	if err := checkAccess(e, album, in); err != nil {
		return nil, err
	}

	return s.store(ctx, e.ID, album, in)
}

// UploadHomepage adds a marketing gallery photo; category becomes the album
func (s *Service) UploadHomepage(ctx context.Context, category string, in *UploadInput) (*Photo, error) {
	album := strings.TrimSpace(category)
	if album == "" {
		album = AlbumHomepage
	}
	return s.store(ctx, event.HomepageEventID, album, in)
}

func (s *Service) store(ctx context.Context, eventID, album string, in *UploadInput) (*Photo, error) {
	if in.File == nil {
		return nil, ErrMissingFile
	}

	data, mimeType, err := storage.ValidateFile(in.File, storage.CategoryImage, s.maxSize)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	key := fmt.Sprintf("events/%s/%s%s", eventID, id, storage.GetExtensionForMime(mimeType))

	if err := s.storage.Put(ctx, key, bytes.NewReader(data), mimeType); err != nil {
		return nil, fmt.Errorf("store original: %w", err)
	}

	p := &Photo{
		ID:           id,
		EventID:      eventID,
		Filename:     key,
		OriginalName: originalName(in.OriginalName, key),
		URL:          s.storage.GetURL(key),
		UploaderName: uploaderName(in.UploaderName),
		AlbumName:    album,
		MimeType:     mimeType,
		SizeBytes:    int64(len(data)),
		UploadedAt:   time.Now(),
	}

	thumbFailed := false
	if thumbURL, err := s.renderThumbnail(ctx, key, data); err != nil {
		log.Warn().Err(err).Str("photo_id", id).Msg("Thumbnail generation failed, deferring to worker")
		thumbFailed = true
	} else {
		p.ThumbnailURL = thumbURL
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.removeFiles(ctx, key)
		return nil, err
	}

	if thumbFailed && s.publisher != nil {
		if err := s.publisher.Publish(ctx, id); err != nil {
			log.Warn().Err(err).Str("photo_id", id).Msg("Failed to notify thumbnail worker")
		}
	}

	log.Info().
		Str("photo_id", id).
		Str("event_id", eventID).
		Str("album", album).
		Int64("size", p.SizeBytes).
		Msg("Photo uploaded")

	return p, nil
}

func (s *Service) renderThumbnail(ctx context.Context, key string, data []byte) (string, error) {
	thumb, err := s.processor.Thumbnail(data)
	if err != nil {
		return "", err
	}
	thumbKey := imaging.ThumbnailKey(key)
	if err := s.storage.Put(ctx, thumbKey, bytes.NewReader(thumb.Data), thumb.ContentType); err != nil {
		return "", err
	}
	return s.storage.GetURL(thumbKey), nil
}

// ListByEvent returns an event's photos, newest first
func (s *Service) ListByEvent(ctx context.Context, eventID string) ([]*Photo, error) {
	if _, err := s.events.Get(ctx, eventID); err != nil {
		return nil, err
	}
	return s.repo.ListByEvent(ctx, eventID)
}

// ListByAlbum filters by exact, case-sensitive album name
func (s *Service) ListByAlbum(ctx context.Context, eventID, album string) ([]*Photo, error) {
	if _, err := s.events.Get(ctx, eventID); err != nil {
		return nil, err
	}
	return s.repo.ListByAlbum(ctx, eventID, album)
}

// ListHomepage returns marketing gallery photos, optionally by category
func (s *Service) ListHomepage(ctx context.Context, category string) ([]*Photo, error) {
	if category == "" {
		return s.repo.ListByEvent(ctx, event.HomepageEventID)
	}
	return s.repo.ListByAlbum(ctx, event.HomepageEventID, category)
}

// ListRecent returns the latest event photos for the dashboard
func (s *Service) ListRecent(ctx context.Context, limit int) ([]*Photo, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}
	return s.repo.ListRecent(ctx, event.HomepageEventID, limit)
}

// Like adjusts the like counter atomically
func (s *Service) Like(ctx context.Context, photoID string, delta int) (*Photo, error) {
	p, err := s.repo.AddLikes(ctx, photoID, delta)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPhotoNotFound
	}
	return p, nil
}

// SetLikes overwrites the like counter
func (s *Service) SetLikes(ctx context.Context, photoID string, likes int) (*Photo, error) {
	if likes < 0 {
		return nil, ErrInvalidCounter
	}
	p, err := s.repo.SetLikes(ctx, photoID, likes)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPhotoNotFound
	}
	return p, nil
}

// Delete removes the photo row and, best-effort, its stored files
func (s *Service) Delete(ctx context.Context, photoID string) error {
	p, err := s.repo.GetByID(ctx, photoID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPhotoNotFound
	}

	if err := s.repo.Delete(ctx, photoID); err != nil {
		return err
	}

	s.removeFiles(ctx, p.Filename)
	return nil
}

// SumSizeBytes returns the total stored bytes of all photos
func (s *Service) SumSizeBytes(ctx context.Context) (int64, error) {
	return s.repo.SumSizeBytes(ctx)
}

// ProcessPendingThumbnails renders missing thumbnails for up to batch photos
// and returns how many succeeded.
func (s *Service) ProcessPendingThumbnails(ctx context.Context, batch int) (int, error) {
	photos, err := s.repo.ListMissingThumbnails(ctx, MaxThumbnailAttempts, batch)
	if err != nil {
		return 0, err
	}

	done := 0
	for _, p := range photos {
		if err := s.processThumbnail(ctx, p); err != nil {
			log.Warn().Err(err).Str("photo_id", p.ID).Int("attempt", p.ThumbnailAttempts+1).Msg("Thumbnail retry failed")
			if markErr := s.repo.MarkThumbnailFailed(ctx, p.ID); markErr != nil {
				log.Error().Err(markErr).Str("photo_id", p.ID).Msg("Failed to record thumbnail attempt")
			}
			continue
		}
		done++
	}
	return done, nil
}

func (s *Service) processThumbnail(ctx context.Context, p *Photo) error {
	rc, err := s.storage.Get(ctx, p.Filename)
	if err != nil {
		return fmt.Errorf("read original: %w", err)
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rc); err != nil {
		return fmt.Errorf("read original: %w", err)
	}

	thumbURL, err := s.renderThumbnail(ctx, p.Filename, buf.Bytes())
	if err != nil {
		return err
	}
	return s.repo.SetThumbnail(ctx, p.ID, thumbURL)
}

func (s *Service) removeFiles(ctx context.Context, key string) {
	for _, k := range []string{key, imaging.ThumbnailKey(key)} {
		if err := s.storage.Delete(ctx, k); err != nil {
			log.Warn().Err(err).Str("key", k).Msg("Failed to delete stored file")
		}
	}
}

// checkAccess enforces album rules. Admins may upload anywhere; Official and
// homepage albums are theirs alone; every other guest upload needs proof of
// the event's access code.
func checkAccess(e *event.Event, album string, in *UploadInput) error {
	if in.IsAdmin {
		return nil
	}
	if album == AlbumOfficial || album == AlbumHomepage {
		return ErrAdminOnlyAlbum
	}
	if in.GuestEventID == e.ID {
		return nil
	}
	if event.CodeMatches(e.AccessCode, in.AccessCode) {
		return nil
	}
	return ErrAccessDenied
}

func albumName(album string) string {
	album = strings.TrimSpace(album)
	if album == "" {
		return DefaultAlbum
	}
	return album
}

func uploaderName(name string) sql.NullString {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultUploader
	}
	return sql.NullString{String: name, Valid: true}
}

func originalName(name, key string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return key[strings.LastIndex(key, "/")+1:]
}

// IsUploadError reports whether err is a client-side file problem
func IsUploadError(err error) bool {
	return errors.Is(err, storage.ErrFileTooLarge) ||
		errors.Is(err, storage.ErrInvalidMimeType) ||
		errors.Is(err, storage.ErrEmptyFile) ||
		errors.Is(err, ErrMissingFile)
}
