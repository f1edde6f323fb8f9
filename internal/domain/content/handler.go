package content

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hafiportrait/wedibox-api/internal/pkg/errorhandler"
	"github.com/hafiportrait/wedibox-api/internal/pkg/response"
	"github.com/hafiportrait/wedibox-api/internal/pkg/validator"
)

// Handler handles FAQ and testimonial requests
type Handler struct {
	service *Service
}

// NewHandler creates content handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListFAQ handles GET /faq
func (h *Handler) ListFAQ(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListFAQ(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		errorhandler.Internal(r.Context(), w, "content.faq", err)
		return
	}
	response.OK(w, NewFAQListResponse(items))
}

// ListFAQCategories handles GET /faq/categories
func (h *Handler) ListFAQCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListFAQCategories(r.Context())
	if err != nil {
		errorhandler.Internal(r.Context(), w, "content.faq_categories", err)
		return
	}
	response.OK(w, categories)
}

// ListTestimonials handles GET /testimonials
func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListTestimonials(r.Context())
	if err != nil {
		errorhandler.Internal(r.Context(), w, "content.testimonials", err)
		return
	}

	out := make([]*TestimonialResponse, len(items))
	for i, t := range items {
		out[i] = TestimonialResponseFromEntity(t)
	}
	response.List(w, out, len(out))
}

// CreateTestimonial handles POST /admin/testimonials
func (h *Handler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req CreateTestimonialRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	t, err := h.service.CreateTestimonial(r.Context(), &req)
	if err != nil {
		errorhandler.Internal(r.Context(), w, "content.create_testimonial", err)
		return
	}
	response.Created(w, TestimonialResponseFromEntity(t))
}

// DeleteTestimonial handles DELETE /admin/testimonials/{id}
func (h *Handler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid testimonial ID")
		return
	}

	if err := h.service.DeleteTestimonial(r.Context(), id); err != nil {
		if errors.Is(err, ErrTestimonialNotFound) {
			response.NotFound(w, "Testimonial not found")
			return
		}
		errorhandler.Internal(r.Context(), w, "content.delete_testimonial", err)
		return
	}
	response.OK(w, map[string]string{"status": "deleted"})
}
