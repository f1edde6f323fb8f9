package pricing

import (
	"time"

	"github.com/google/uuid"
)

// PlanInput is one plan in an upsert request
type PlanInput struct {
	Name        string   `json:"name" validate:"required,min=1,max=50"`
	Price       string   `json:"price" validate:"required,max=20"`
	PriceAmount int64    `json:"priceAmount" validate:"gte=0"`
	Features    []string `json:"features" validate:"max=20,dive,required,max=200"`
	IsPopular   bool     `json:"isPopular"`
}

// UpsertPlansRequest replaces the whole plan list; order is display order
type UpsertPlansRequest struct {
	Plans []PlanInput `json:"plans" validate:"required,min=1,max=10,dive"`
}

// PlanResponse represents a plan in API responses
type PlanResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	PriceAmount int64     `json:"priceAmount"`
	Features    []string  `json:"features"`
	IsPopular   bool      `json:"isPopular"`
}

// PlanResponseFromEntity converts entity to response
func PlanResponseFromEntity(p *Plan) *PlanResponse {
	features := []string(p.Features)
	if features == nil {
		features = []string{}
	}
	return &PlanResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		PriceAmount: p.PriceAmount,
		Features:    features,
		IsPopular:   p.IsPopular,
	}
}

// PlanResponsesFromEntities converts a slice
func PlanResponsesFromEntities(plans []*Plan) []*PlanResponse {
	out := make([]*PlanResponse, len(plans))
	for i, p := range plans {
		out[i] = PlanResponseFromEntity(p)
	}
	return out
}

// DocumentResponse represents the current pricing PDF
type DocumentResponse struct {
	ID           uuid.UUID `json:"id"`
	URL          string    `json:"url"`
	OriginalName string    `json:"originalName"`
	SizeBytes    int64     `json:"sizeBytes"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// DocumentResponseFromEntity converts entity to response
func DocumentResponseFromEntity(d *Document) *DocumentResponse {
	return &DocumentResponse{
		ID:           d.ID,
		URL:          d.URL,
		OriginalName: d.OriginalName,
		SizeBytes:    d.SizeBytes,
		UploadedAt:   d.UploadedAt,
	}
}
