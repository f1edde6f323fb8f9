package content

import "github.com/google/uuid"

// FAQItemResponse represents a FAQ entry
type FAQItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Category  string    `json:"category"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	SortOrder int       `json:"sortOrder"`
}

// FAQListResponse carries the flat list and the same items grouped by category
type FAQListResponse struct {
	Items   []*FAQItemResponse            `json:"items"`
	Grouped map[string][]*FAQItemResponse `json:"grouped"`
	Total   int                           `json:"total"`
}

// NewFAQListResponse groups items by category, keeping their order
func NewFAQListResponse(items []*FAQItem) *FAQListResponse {
	resp := &FAQListResponse{
		Items:   make([]*FAQItemResponse, len(items)),
		Grouped: make(map[string][]*FAQItemResponse),
		Total:   len(items),
	}
	for i, item := range items {
		r := &FAQItemResponse{
			ID:        item.ID,
			Category:  item.Category,
			Question:  item.Question,
			Answer:    item.Answer,
			SortOrder: item.SortOrder,
		}
		resp.Items[i] = r
		resp.Grouped[item.Category] = append(resp.Grouped[item.Category], r)
	}
	return resp
}

// CreateTestimonialRequest for POST /admin/testimonials
type CreateTestimonialRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Quote     string `json:"quote" validate:"required,min=1,max=1000"`
	Rating    int    `json:"rating" validate:"omitempty,min=1,max=5"`
	EventDate string `json:"eventDate" validate:"omitempty,max=50"`
	ImageURL  string `json:"imageUrl" validate:"omitempty,url,max=500"`
	SortOrder int    `json:"sortOrder" validate:"gte=0"`
}

// TestimonialResponse represents a testimonial
type TestimonialResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Quote     string    `json:"quote"`
	Rating    int       `json:"rating"`
	EventDate string    `json:"eventDate,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
}

// TestimonialResponseFromEntity converts entity to response
func TestimonialResponseFromEntity(t *Testimonial) *TestimonialResponse {
	return &TestimonialResponse{
		ID:        t.ID,
		Name:      t.Name,
		Quote:     t.Quote,
		Rating:    t.Rating,
		EventDate: t.EventDate.String,
		ImageURL:  t.ImageURL.String,
	}
}
