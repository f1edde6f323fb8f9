package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hafiportrait/wedibox-api/internal/pkg/database"
)

// Repository defines event data access
type Repository interface {
	Create(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetByShareableLink(ctx context.Context, link string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, e *Event) error
	// DeleteCascade removes the event with its photos and messages in one
	// transaction and returns the storage keys of the removed photos.
	DeleteCascade(ctx context.Context, id string) ([]string, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates event repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const eventColumns = `id, name, date, access_code, is_premium, qr_code, shareable_link, created_at, updated_at`

func (r *repository) Create(ctx context.Context, e *Event) error {
	query := `
		INSERT INTO events (id, name, date, access_code, is_premium, qr_code, shareable_link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Name, e.Date, e.AccessCode, e.IsPremium,
		e.QRCode, e.ShareableLink, e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id string) (*Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	var e Event
	if err := r.db.GetContext(ctx, &e, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) GetByShareableLink(ctx context.Context, link string) (*Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE shareable_link = $1`
	var e Event
	if err := r.db.GetContext(ctx, &e, query, link); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) List(ctx context.Context) ([]*Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id <> $1 ORDER BY created_at DESC`
	events := []*Event{}
	err := r.db.SelectContext(ctx, &events, query, HomepageEventID)
	return events, err
}

func (r *repository) Update(ctx context.Context, e *Event) error {
	query := `
		UPDATE events
		SET name = $2, date = $3, access_code = $4, is_premium = $5, updated_at = $6
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, e.ID, e.Name, e.Date, e.AccessCode, e.IsPremium, e.UpdatedAt)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *repository) DeleteCascade(ctx context.Context, id string) ([]string, error) {
	var keys []string

	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := tx.SelectContext(ctx, &keys, `SELECT filename FROM photos WHERE event_id = $1`, id); err != nil {
			return fmt.Errorf("select photo keys: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM photos WHERE event_id = $1`, id); err != nil {
			return fmt.Errorf("delete photos: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE event_id = $1`, id); err != nil {
			return fmt.Errorf("delete messages: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete event: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrEventNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}
