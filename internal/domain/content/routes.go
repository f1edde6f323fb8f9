package content

import "github.com/go-chi/chi/v5"

// FAQRoutes returns the public /faq router
func (h *Handler) FAQRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListFAQ)
	r.Get("/categories", h.ListFAQCategories)
	return r
}

// TestimonialRoutes returns the public /testimonials router
func (h *Handler) TestimonialRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListTestimonials)
	return r
}

// RegisterAdminRoutes attaches testimonial management to the admin router
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/testimonials", h.ListTestimonials)
	r.Post("/testimonials", h.CreateTestimonial)
	r.Delete("/testimonials/{id}", h.DeleteTestimonial)
}
