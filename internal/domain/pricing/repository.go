package pricing

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/hafiportrait/wedibox-api/internal/pkg/database"
)

// Repository defines pricing data access
type Repository interface {
	ListPlans(ctx context.Context) ([]*Plan, error)
	ReplacePlans(ctx context.Context, plans []*Plan) error
	CreateDocument(ctx context.Context, doc *Document) error
	CurrentDocument(ctx context.Context) (*Document, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates pricing repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListPlans(ctx context.Context) ([]*Plan, error) {
	query := `
		SELECT id, name, price, price_amount, features, is_popular, sort_order, updated_at
		FROM pricing_plans
		ORDER BY sort_order, name
	`
	plans := []*Plan{}
	if err := r.db.SelectContext(ctx, &plans, query); err != nil {
		return nil, err
	}
	return plans, nil
}

// ReplacePlans swaps the whole plan list in one transaction
func (r *repository) ReplacePlans(ctx context.Context, plans []*Plan) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM pricing_plans`); err != nil {
			return err
		}

		query := `
			INSERT INTO pricing_plans (id, name, price, price_amount, features, is_popular, sort_order, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		for _, p := range plans {
			if _, err := tx.ExecContext(ctx, query,
				p.ID, p.Name, p.Price, p.PriceAmount, p.Features, p.IsPopular, p.SortOrder, p.UpdatedAt,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) CreateDocument(ctx context.Context, doc *Document) error {
	query := `
		INSERT INTO pricing_documents (id, filename, original_name, url, size_bytes, uploaded_by, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		doc.ID, doc.Filename, doc.OriginalName, doc.URL, doc.SizeBytes, doc.UploadedBy, doc.UploadedAt,
	)
	return err
}

func (r *repository) CurrentDocument(ctx context.Context) (*Document, error) {
	query := `
		SELECT id, filename, original_name, url, size_bytes, uploaded_by, uploaded_at
		FROM pricing_documents
		ORDER BY uploaded_at DESC
		LIMIT 1
	`
	var doc Document
	if err := r.db.GetContext(ctx, &doc, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}
