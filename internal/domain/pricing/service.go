package pricing

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hafiportrait/wedibox-api/internal/pkg/storage"
)

// Service handles pricing business logic
type Service struct {
	repo  Repository
	store storage.Storage
}

// NewService creates pricing service
func NewService(repo Repository, store storage.Storage) *Service {
	return &Service{repo: repo, store: store}
}

// ListPlans returns plans in display order
func (s *Service) ListPlans(ctx context.Context) ([]*Plan, error) {
	return s.repo.ListPlans(ctx)
}

// UpsertPlans replaces all plans with the given list
func (s *Service) UpsertPlans(ctx context.Context, req *UpsertPlansRequest) ([]*Plan, error) {
	now := time.Now()
	seen := make(map[string]bool, len(req.Plans))
	plans := make([]*Plan, 0, len(req.Plans))

	for i, in := range req.Plans {
		name := strings.TrimSpace(in.Name)
		key := strings.ToLower(name)
		if seen[key] {
			return nil, ErrDuplicatePlan
		}
		seen[key] = true

		features := make([]string, 0, len(in.Features))
		for _, f := range in.Features {
			if f = strings.TrimSpace(f); f != "" {
				features = append(features, f)
			}
		}

		plans = append(plans, &Plan{
			ID:          uuid.New(),
			Name:        name,
			Price:       strings.TrimSpace(in.Price),
			PriceAmount: in.PriceAmount,
			Features:    features,
			IsPopular:   in.IsPopular,
			SortOrder:   i,
			UpdatedAt:   now,
		})
	}

	if err := s.repo.ReplacePlans(ctx, plans); err != nil {
		return nil, err
	}

	log.Info().Int("plans", len(plans)).Msg("Pricing plans replaced")
	return plans, nil
}

// UploadPDF stores a pricing PDF and makes it the current document
func (s *Service) UploadPDF(ctx context.Context, file io.Reader, originalName string, adminID uuid.UUID) (*Document, error) {
	if file == nil {
		return nil, ErrMissingFile
	}

	data, mimeType, err := storage.ValidateFile(file, storage.CategoryDocument, MaxDocumentSize)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	key := fmt.Sprintf("pricing/%s%s", id, storage.GetExtensionForMime(mimeType))

	if err := s.store.Put(ctx, key, bytes.NewReader(data), mimeType); err != nil {
		return nil, fmt.Errorf("store pricing document: %w", err)
	}

	doc := &Document{
		ID:           id,
		Filename:     key,
		OriginalName: originalName,
		URL:          s.store.GetURL(key),
		SizeBytes:    int64(len(data)),
		UploadedBy:   uuid.NullUUID{UUID: adminID, Valid: adminID != uuid.Nil},
		UploadedAt:   time.Now(),
	}

	if err := s.repo.CreateDocument(ctx, doc); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			log.Warn().Err(delErr).Str("key", key).Msg("Failed to remove orphaned pricing document")
		}
		return nil, err
	}

	log.Info().Str("document_id", id.String()).Int64("size", doc.SizeBytes).Msg("Pricing document uploaded")
	return doc, nil
}

// CurrentPDF returns the most recently uploaded pricing document
func (s *Service) CurrentPDF(ctx context.Context) (*Document, error) {
	doc, err := s.repo.CurrentDocument(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNoDocument
	}
	return doc, nil
}

// OpenCurrentPDF opens the current document for streaming. The caller closes
// the reader.
func (s *Service) OpenCurrentPDF(ctx context.Context) (*Document, io.ReadCloser, error) {
	doc, err := s.CurrentPDF(ctx)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.store.Get(ctx, doc.Filename)
	if err != nil {
		return nil, nil, fmt.Errorf("open pricing document: %w", err)
	}
	return doc, rc, nil
}
