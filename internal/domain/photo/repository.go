package photo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// Repository defines photo data access
type Repository interface {
	Create(ctx context.Context, p *Photo) error
	GetByID(ctx context.Context, id string) (*Photo, error)
	ListByEvent(ctx context.Context, eventID string) ([]*Photo, error)
	ListByAlbum(ctx context.Context, eventID, album string) ([]*Photo, error)
	ListRecent(ctx context.Context, excludeEventID string, limit int) ([]*Photo, error)
	AddLikes(ctx context.Context, id string, delta int) (*Photo, error)
	SetLikes(ctx context.Context, id string, likes int) (*Photo, error)
	Delete(ctx context.Context, id string) error
	SumSizeBytes(ctx context.Context) (int64, error)

	// Thumbnail backfill
	ListMissingThumbnails(ctx context.Context, maxAttempts, limit int) ([]*Photo, error)
	SetThumbnail(ctx context.Context, id, thumbnailURL string) error
	MarkThumbnailFailed(ctx context.Context, id string) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates photo repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const photoColumns = `id, event_id, filename, original_name, url, thumbnail_url, uploader_name,
	album_name, likes, mime_type, size_bytes, thumbnail_attempts, uploaded_at`

func (r *repository) Create(ctx context.Context, p *Photo) error {
	query := `
		INSERT INTO photos (id, event_id, filename, original_name, url, thumbnail_url, uploader_name,
			album_name, likes, mime_type, size_bytes, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.EventID,
		p.Filename,
		p.OriginalName,
		p.URL,
		p.ThumbnailURL,
		p.UploaderName,
		p.AlbumName,
		p.Likes,
		p.MimeType,
		p.SizeBytes,
		p.UploadedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id string) (*Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE id = $1`
	var p Photo
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListByEvent(ctx context.Context, eventID string) ([]*Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE event_id = $1 ORDER BY uploaded_at DESC`
	photos := []*Photo{}
	err := r.db.SelectContext(ctx, &photos, query, eventID)
	return photos, err
}

func (r *repository) ListByAlbum(ctx context.Context, eventID, album string) ([]*Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE event_id = $1 AND album_name = $2 ORDER BY uploaded_at DESC`
	photos := []*Photo{}
	err := r.db.SelectContext(ctx, &photos, query, eventID, album)
	return photos, err
}

func (r *repository) ListRecent(ctx context.Context, excludeEventID string, limit int) ([]*Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE event_id <> $1 ORDER BY uploaded_at DESC LIMIT $2`
	photos := []*Photo{}
	err := r.db.SelectContext(ctx, &photos, query, excludeEventID, limit)
	return photos, err
}

// AddLikes applies delta in a single statement; the count never drops below zero
func (r *repository) AddLikes(ctx context.Context, id string, delta int) (*Photo, error) {
	query := `UPDATE photos SET likes = GREATEST(likes + $2, 0) WHERE id = $1 RETURNING ` + photoColumns
	return r.updateReturning(ctx, query, id, delta)
}

func (r *repository) SetLikes(ctx context.Context, id string, likes int) (*Photo, error) {
	query := `UPDATE photos SET likes = $2 WHERE id = $1 RETURNING ` + photoColumns
	return r.updateReturning(ctx, query, id, likes)
}

func (r *repository) updateReturning(ctx context.Context, query string, args ...interface{}) (*Photo, error) {
	var p Photo
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPhotoNotFound
	}
	return nil
}

func (r *repository) SumSizeBytes(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total, `SELECT COALESCE(SUM(size_bytes), 0) FROM photos`)
	return total, err
}

func (r *repository) ListMissingThumbnails(ctx context.Context, maxAttempts, limit int) ([]*Photo, error) {
	query := `
		SELECT ` + photoColumns + ` FROM photos
		WHERE thumbnail_url = '' AND thumbnail_attempts < $1
		ORDER BY uploaded_at
		LIMIT $2
	`
	photos := []*Photo{}
	err := r.db.SelectContext(ctx, &photos, query, maxAttempts, limit)
	return photos, err
}

func (r *repository) SetThumbnail(ctx context.Context, id, thumbnailURL string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE photos SET thumbnail_url = $2 WHERE id = $1`, id, thumbnailURL)
	return err
}

func (r *repository) MarkThumbnailFailed(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE photos SET thumbnail_attempts = thumbnail_attempts + 1 WHERE id = $1`, id)
	return err
}
