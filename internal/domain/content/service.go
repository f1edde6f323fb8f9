package content

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultRating is used when a testimonial is created without one
const DefaultRating = 5

// Service serves landing-page content
type Service struct {
	repo Repository
}

// NewService creates content service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListFAQ returns active FAQ items
func (s *Service) ListFAQ(ctx context.Context, category string) ([]*FAQItem, error) {
	return s.repo.ListFAQ(ctx, strings.TrimSpace(category))
}

// ListFAQCategories returns distinct categories of active items
func (s *Service) ListFAQCategories(ctx context.Context) ([]string, error) {
	return s.repo.ListFAQCategories(ctx)
}

// ListTestimonials returns testimonials in display order
func (s *Service) ListTestimonials(ctx context.Context) ([]*Testimonial, error) {
	return s.repo.ListTestimonials(ctx)
}

// CreateTestimonial stores a new testimonial
func (s *Service) CreateTestimonial(ctx context.Context, req *CreateTestimonialRequest) (*Testimonial, error) {
	rating := req.Rating
	if rating == 0 {
		rating = DefaultRating
	}

	t := &Testimonial{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Quote:     strings.TrimSpace(req.Quote),
		Rating:    rating,
		EventDate: nullString(req.EventDate),
		ImageURL:  nullString(req.ImageURL),
		SortOrder: req.SortOrder,
		CreatedAt: time.Now(),
	}

	if err := s.repo.CreateTestimonial(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTestimonial removes a testimonial
func (s *Service) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTestimonial(ctx, id)
}

func nullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}
