package message

import "time"

// CreateMessageRequest for POST /events/{id}/messages
type CreateMessageRequest struct {
	GuestName string `json:"guestName" validate:"required,min=1,max=100"`
	Message   string `json:"message" validate:"required,min=1,max=1000"`
}

// HeartsRequest for PATCH /messages/{id}/hearts
type HeartsRequest struct {
	Delta  *int `json:"delta" validate:"omitempty,gte=-100,lte=100"`
	Hearts *int `json:"hearts" validate:"omitempty,gte=0"`
}

// MessageResponse represents a guestbook entry in API responses
type MessageResponse struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	GuestName string    `json:"guestName"`
	Message   string    `json:"message"`
	Hearts    int       `json:"hearts"`
	CreatedAt time.Time `json:"createdAt"`
}

// MessageResponseFromEntity converts entity to response DTO
func MessageResponseFromEntity(m *Message) *MessageResponse {
	return &MessageResponse{
		ID:        m.ID,
		EventID:   m.EventID,
		GuestName: m.GuestName,
		Message:   m.Message,
		Hearts:    m.Hearts,
		CreatedAt: m.CreatedAt,
	}
}
