package inquiry

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the public /inquiries router
func (h *Handler) Routes(submitLimit func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.With(submitLimit).Post("/", h.Submit)
	return r
}

// RegisterAdminRoutes attaches the inquiry inbox to the admin router
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/inquiries", h.List)
	r.Get("/inquiries/{id}", h.GetByID)
	r.Patch("/inquiries/{id}/handled", h.MarkHandled)
}
