package inquiry

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateInquiryRequest for POST /inquiries
type CreateInquiryRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Subject string `json:"subject" validate:"required,min=1,max=200"`
	Message string `json:"message" validate:"required,min=1,max=5000"`
}

// Normalize trims surrounding whitespace from every field
func (r *CreateInquiryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

// InquirySubmittedResponse for the public form
type InquirySubmittedResponse struct {
	InquiryID uuid.UUID `json:"inquiryId"`
	Message   string    `json:"message"`
}

// InquiryResponse for admin API responses
type InquiryResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	Handled   bool       `json:"handled"`
	HandledAt *time.Time `json:"handledAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ToResponse converts entity to response
func ToResponse(i *Inquiry) *InquiryResponse {
	resp := &InquiryResponse{
		ID:        i.ID,
		Name:      i.Name,
		Email:     i.Email,
		Phone:     i.Phone.String,
		Subject:   i.Subject,
		Message:   i.Message,
		Handled:   i.IsHandled(),
		CreatedAt: i.CreatedAt,
	}
	if i.HandledAt.Valid {
		t := i.HandledAt.Time
		resp.HandledAt = &t
	}
	return resp
}

// notificationData feeds the inquiry email templates
type notificationData struct {
	Name    string
	Email   string
	Subject string
	Message string
}
