package message

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hafiportrait/wedibox-api/internal/domain/event"
)

// EventLookup resolves regular events
type EventLookup interface {
	Get(ctx context.Context, id string) (*event.Event, error)
}

// Service handles guestbook logic
type Service struct {
	repo   Repository
	events EventLookup
}

// NewService creates message service
func NewService(repo Repository, events EventLookup) *Service {
	return &Service{repo: repo, events: events}
}

// Add posts a guestbook message to an existing event
func (s *Service) Add(ctx context.Context, eventID string, req *CreateMessageRequest) (*Message, error) {
	if _, err := s.events.Get(ctx, eventID); err != nil {
		return nil, err
	}

	m := &Message{
		ID:        uuid.New().String(),
		EventID:   eventID,
		GuestName: strings.TrimSpace(req.GuestName),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	log.Debug().Str("message_id", m.ID).Str("event_id", eventID).Msg("Guestbook message added")
	return m, nil
}

// ListByEvent returns an event's messages, newest first
func (s *Service) ListByEvent(ctx context.Context, eventID string) ([]*Message, error) {
	if _, err := s.events.Get(ctx, eventID); err != nil {
		return nil, err
	}
	return s.repo.ListByEvent(ctx, eventID)
}

// Heart adjusts the heart counter atomically
func (s *Service) Heart(ctx context.Context, id string, delta int) (*Message, error) {
	m, err := s.repo.AddHearts(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMessageNotFound
	}
	return m, nil
}

// SetHearts overwrites the heart counter
func (s *Service) SetHearts(ctx context.Context, id string, hearts int) (*Message, error) {
	if hearts < 0 {
		return nil, ErrInvalidCounter
	}
	m, err := s.repo.SetHearts(ctx, id, hearts)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMessageNotFound
	}
	return m, nil
}

// Delete removes a message
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("message_id", id).Msg("Guestbook message deleted")
	return nil
}
