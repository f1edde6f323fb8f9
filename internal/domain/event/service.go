package event

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hafiportrait/wedibox-api/internal/pkg/imaging"
	"github.com/hafiportrait/wedibox-api/internal/pkg/jwt"
	"github.com/hafiportrait/wedibox-api/internal/pkg/qrcode"
)

const (
	accessCodeLength  = 6
	accessCodeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// FileRemover deletes stored objects by key
type FileRemover interface {
	Delete(ctx context.Context, key string) error
}

// Service handles event business logic
type Service struct {
	repo    Repository
	qr      *qrcode.Service
	tokens  *jwt.Service
	storage FileRemover
}

// NewService creates event service
func NewService(repo Repository, qr *qrcode.Service, tokens *jwt.Service, storage FileRemover) *Service {
	return &Service{
		repo:    repo,
		qr:      qr,
		tokens:  tokens,
		storage: storage,
	}
}

// Create stores a new event with derived link and QR code
func (s *Service) Create(ctx context.Context, req *CreateEventRequest) (*Event, error) {
	code := req.AccessCode
	if code == "" {
		generated, err := GenerateAccessCode()
		if err != nil {
			return nil, err
		}
		code = generated
	}

	now := time.Now()
	id := uuid.New().String()
	link := s.qr.ShareableLink(id)

	e := &Event{
		ID:            id,
		Name:          strings.TrimSpace(req.Name),
		Date:          req.Date,
		AccessCode:    code,
		IsPremium:     req.IsPremium,
		QRCode:        s.qr.ImageURL(link),
		ShareableLink: link,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	log.Info().Str("event_id", e.ID).Str("name", e.Name).Msg("Event created")
	return e, nil
}

// Get returns a regular event by id
func (s *Service) Get(ctx context.Context, id string) (*Event, error) {
	if id == HomepageEventID {
		return nil, ErrEventNotFound
	}
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrEventNotFound
	}
	return e, nil
}

// GetByShareableLink resolves an event from its public link
func (s *Service) GetByShareableLink(ctx context.Context, link string) (*Event, error) {
	e, err := s.repo.GetByShareableLink(ctx, link)
	if err != nil {
		return nil, err
	}
	if e == nil || e.IsReserved() {
		return nil, ErrEventNotFound
	}
	return e, nil
}

// List returns all events, newest first
func (s *Service) List(ctx context.Context) ([]*Event, error) {
	return s.repo.List(ctx)
}

// Update overwrites the supplied fields only
func (s *Service) Update(ctx context.Context, id string, req *UpdateEventRequest) (*Event, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		e.Name = strings.TrimSpace(*req.Name)
	}
	if req.Date != nil {
		e.Date = *req.Date
	}
	if req.AccessCode != nil {
		e.AccessCode = *req.AccessCode
	}
	if req.IsPremium != nil {
		e.IsPremium = *req.IsPremium
	}
	e.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes the event, its photos and its messages atomically.
// Stored files are removed afterwards; failures there are only logged.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == HomepageEventID {
		return ErrReservedEvent
	}

	keys, err := s.repo.DeleteCascade(ctx, id)
	if err != nil {
		return err
	}

	for _, key := range keys {
		for _, k := range []string{key, imaging.ThumbnailKey(key)} {
			if err := s.storage.Delete(ctx, k); err != nil {
				log.Warn().Err(err).Str("key", k).Str("event_id", id).Msg("Failed to delete stored file")
			}
		}
	}

	log.Info().Str("event_id", id).Int("photos", len(keys)).Msg("Event deleted")
	return nil
}

// VerifyAccessCode compares code with the stored one, case-sensitively.
// A match yields a guest token bound to the event.
func (s *Service) VerifyAccessCode(ctx context.Context, id, code string) (*VerifyCodeResponse, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CodeMatches(e.AccessCode, code) {
		return &VerifyCodeResponse{Valid: false}, nil
	}

	token, expiresAt, err := s.tokens.GenerateGuestToken(e.ID)
	if err != nil {
		return nil, err
	}
	return &VerifyCodeResponse{Valid: true, AccessToken: token, ExpiresAt: &expiresAt}, nil
}

// QRCodePNG renders the shareable link as a PNG
func (s *Service) QRCodePNG(ctx context.Context, id string, size int) ([]byte, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.qr.PNG(e.ShareableLink, qrcode.ClampSize(size))
}

// CodeMatches compares access codes in constant time
func CodeMatches(stored, supplied string) bool {
	if stored == "" || supplied == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// GenerateAccessCode returns a random code without ambiguous characters
func GenerateAccessCode() (string, error) {
	max := big.NewInt(int64(len(accessCodeCharset)))
	b := make([]byte, accessCodeLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = accessCodeCharset[n.Int64()]
	}
	return string(b), nil
}
