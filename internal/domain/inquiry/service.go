package inquiry

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hafiportrait/wedibox-api/internal/pkg/email"
)

// Notifier queues templated emails
type Notifier interface {
	Queue(to, replyTo, subject, templateName string, data interface{})
}

// Service handles inquiry business logic
type Service struct {
	repo        Repository
	notifier    Notifier
	studioEmail string
}

// NewService creates inquiry service. Notifications go to studioEmail.
func NewService(repo Repository, notifier Notifier, studioEmail string) *Service {
	return &Service{repo: repo, notifier: notifier, studioEmail: studioEmail}
}

// Submit stores a contact-form inquiry and notifies the studio
func (s *Service) Submit(ctx context.Context, req *CreateInquiryRequest, ip, userAgent string) (*Inquiry, error) {
	inq := &Inquiry{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     sql.NullString{String: req.Phone, Valid: req.Phone != ""},
		Subject:   req.Subject,
		Message:   req.Message,
		IPAddress: sql.NullString{String: ip, Valid: ip != ""},
		UserAgent: sql.NullString{String: userAgent, Valid: userAgent != ""},
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, inq); err != nil {
		return nil, err
	}

	data := notificationData{Name: inq.Name, Email: inq.Email, Subject: inq.Subject, Message: inq.Message}
	if s.notifier != nil {
		if s.studioEmail != "" {
			s.notifier.Queue(s.studioEmail, inq.Email, "New inquiry: "+inq.Subject, email.TemplateInquiryReceived, data)
		}
		s.notifier.Queue(inq.Email, s.studioEmail, "We received your message", email.TemplateInquiryConfirmation, data)
	}

	log.Info().Str("inquiry_id", inq.ID.String()).Msg("Inquiry submitted")
	return inq, nil
}

// GetByID returns an inquiry by id
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Inquiry, error) {
	inq, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inq == nil {
		return nil, ErrInquiryNotFound
	}
	return inq, nil
}

// List returns inquiries filtered by status ("", open, handled)
func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]*Inquiry, int, error) {
	var handled *bool
	switch status {
	case "":
	case StatusOpen:
		v := false
		handled = &v
	case StatusHandled:
		v := true
		handled = &v
	default:
		return nil, 0, ErrInvalidStatus
	}
	return s.repo.List(ctx, handled, limit, offset)
}

// MarkHandled marks an inquiry as followed up by adminID
func (s *Service) MarkHandled(ctx context.Context, id, adminID uuid.UUID) (*Inquiry, error) {
	if err := s.repo.MarkHandled(ctx, id, adminID); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}
