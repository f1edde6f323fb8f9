package message

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// Repository defines guestbook data access
type Repository interface {
	Create(ctx context.Context, m *Message) error
	ListByEvent(ctx context.Context, eventID string) ([]*Message, error)
	AddHearts(ctx context.Context, id string, delta int) (*Message, error)
	SetHearts(ctx context.Context, id string, hearts int) (*Message, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates message repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const messageColumns = `id, event_id, guest_name, message, hearts, created_at`

func (r *repository) Create(ctx context.Context, m *Message) error {
	query := `
		INSERT INTO messages (id, event_id, guest_name, message, hearts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query, m.ID, m.EventID, m.GuestName, m.Message, m.Hearts, m.CreatedAt)
	return err
}

func (r *repository) ListByEvent(ctx context.Context, eventID string) ([]*Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE event_id = $1 ORDER BY created_at DESC`
	messages := []*Message{}
	err := r.db.SelectContext(ctx, &messages, query, eventID)
	return messages, err
}

func (r *repository) AddHearts(ctx context.Context, id string, delta int) (*Message, error) {
	query := `UPDATE messages SET hearts = GREATEST(hearts + $2, 0) WHERE id = $1 RETURNING ` + messageColumns
	return r.updateReturning(ctx, query, id, delta)
}

func (r *repository) SetHearts(ctx context.Context, id string, hearts int) (*Message, error) {
	query := `UPDATE messages SET hearts = $2 WHERE id = $1 RETURNING ` + messageColumns
	return r.updateReturning(ctx, query, id, hearts)
}

func (r *repository) updateReturning(ctx context.Context, query string, args ...interface{}) (*Message, error) {
	var m Message
	if err := r.db.GetContext(ctx, &m, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMessageNotFound
	}
	return nil
}
