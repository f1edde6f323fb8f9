package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines landing-page content data access
type Repository interface {
	ListFAQ(ctx context.Context, category string) ([]*FAQItem, error)
	ListFAQCategories(ctx context.Context) ([]string, error)
	ListTestimonials(ctx context.Context) ([]*Testimonial, error)
	CreateTestimonial(ctx context.Context, t *Testimonial) error
	DeleteTestimonial(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates content repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const faqColumns = `id, category, question, answer, sort_order, is_active`

// ListFAQ returns active items, optionally narrowed to one category
func (r *repository) ListFAQ(ctx context.Context, category string) ([]*FAQItem, error) {
	items := []*FAQItem{}
	var err error

	if category != "" {
		err = r.db.SelectContext(ctx, &items, `
			SELECT `+faqColumns+`
			FROM faq_items
			WHERE is_active = true AND category = $1
			ORDER BY sort_order
		`, category)
	} else {
		err = r.db.SelectContext(ctx, &items, `
			SELECT `+faqColumns+`
			FROM faq_items
			WHERE is_active = true
			ORDER BY category, sort_order
		`)
	}
	return items, err
}

func (r *repository) ListFAQCategories(ctx context.Context) ([]string, error) {
	categories := []string{}
	err := r.db.SelectContext(ctx, &categories, `
		SELECT DISTINCT category FROM faq_items WHERE is_active = true ORDER BY category
	`)
	return categories, err
}

func (r *repository) ListTestimonials(ctx context.Context) ([]*Testimonial, error) {
	items := []*Testimonial{}
	err := r.db.SelectContext(ctx, &items, `
		SELECT id, name, quote, rating, event_date, image_url, sort_order, created_at
		FROM testimonials
		ORDER BY sort_order, created_at DESC
	`)
	return items, err
}

func (r *repository) CreateTestimonial(ctx context.Context, t *Testimonial) error {
	query := `
		INSERT INTO testimonials (id, name, quote, rating, event_date, image_url, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Name, t.Quote, t.Rating, t.EventDate, t.ImageURL, t.SortOrder, t.CreatedAt,
	)
	return err
}

func (r *repository) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTestimonialNotFound
	}
	return nil
}
