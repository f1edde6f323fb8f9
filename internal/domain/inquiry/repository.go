package inquiry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines inquiry data access
type Repository interface {
	Create(ctx context.Context, inq *Inquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*Inquiry, error)
	List(ctx context.Context, handled *bool, limit, offset int) ([]*Inquiry, int, error)
	MarkHandled(ctx context.Context, id uuid.UUID, adminID uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates inquiry repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const inquiryColumns = `id, name, email, phone, subject, message, ip_address, user_agent, handled_at, handled_by, created_at`

func (r *repository) Create(ctx context.Context, inq *Inquiry) error {
	query := `
		INSERT INTO inquiries (id, name, email, phone, subject, message, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		inq.ID, inq.Name, inq.Email, inq.Phone, inq.Subject, inq.Message,
		inq.IPAddress, inq.UserAgent, inq.CreatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE id = $1`
	var inq Inquiry
	if err := r.db.GetContext(ctx, &inq, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &inq, nil
}

// List returns inquiries newest first; handled narrows to open or handled ones
func (r *repository) List(ctx context.Context, handled *bool, limit, offset int) ([]*Inquiry, int, error) {
	where := ""

	if handled != nil {
		if *handled {
			where = " WHERE handled_at IS NOT NULL"
		} else {
			where = " WHERE handled_at IS NULL"
		}
	}

	countQuery := "SELECT COUNT(*) FROM inquiries" + where
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM inquiries%s
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, inquiryColumns, where)

	items := []*Inquiry{}
	if err := r.db.SelectContext(ctx, &items, query, limit, offset); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// MarkHandled records the first handling; repeated calls keep the original time
func (r *repository) MarkHandled(ctx context.Context, id uuid.UUID, adminID uuid.UUID) error {
	query := `
		UPDATE inquiries SET
			handled_at = COALESCE(handled_at, NOW()),
			handled_by = COALESCE(handled_by, $2)
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id, uuid.NullUUID{UUID: adminID, Valid: adminID != uuid.Nil})
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrInquiryNotFound
	}
	return nil
}
