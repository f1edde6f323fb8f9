package event

import "time"

// CreateEventRequest for POST /events
type CreateEventRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Date       string `json:"date" validate:"required,event_date"`
	AccessCode string `json:"accessCode" validate:"omitempty,access_code"`
	IsPremium  bool   `json:"isPremium"`
}

// UpdateEventRequest for PUT /admin/events/{id}; nil fields stay unchanged
type UpdateEventRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=200"`
	Date       *string `json:"date" validate:"omitempty,event_date"`
	AccessCode *string `json:"accessCode" validate:"omitempty,access_code"`
	IsPremium  *bool   `json:"isPremium"`
}

// IsEmpty reports whether no field was supplied
func (r *UpdateEventRequest) IsEmpty() bool {
	return r.Name == nil && r.Date == nil && r.AccessCode == nil && r.IsPremium == nil
}

// VerifyCodeRequest for POST /events/{id}/verify-code
type VerifyCodeRequest struct {
	AccessCode string `json:"accessCode" validate:"required,max=64"`
}

// VerifyCodeResponse tells the guest whether the code matched
type VerifyCodeResponse struct {
	Valid       bool       `json:"valid"`
	AccessToken string     `json:"accessToken,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

// EventResponse is the public view of an event; the access code is withheld
type EventResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Date          string    `json:"date"`
	IsPremium     bool      `json:"isPremium"`
	QRCode        string    `json:"qrCode"`
	ShareableLink string    `json:"shareableLink"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AdminEventResponse includes the access code
type AdminEventResponse struct {
	EventResponse
	AccessCode string    `json:"accessCode"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// EventResponseFromEntity converts entity to the public DTO
func EventResponseFromEntity(e *Event) *EventResponse {
	return &EventResponse{
		ID:            e.ID,
		Name:          e.Name,
		Date:          e.Date,
		IsPremium:     e.IsPremium,
		QRCode:        e.QRCode,
		ShareableLink: e.ShareableLink,
		CreatedAt:     e.CreatedAt,
	}
}

// AdminEventResponseFromEntity converts entity to the admin DTO
func AdminEventResponseFromEntity(e *Event) *AdminEventResponse {
	return &AdminEventResponse{
		EventResponse: *EventResponseFromEntity(e),
		AccessCode:    e.AccessCode,
		UpdatedAt:     e.UpdatedAt,
	}
}
