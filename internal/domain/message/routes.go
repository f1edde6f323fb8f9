package message

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterEventRoutes attaches guestbook routes nested under /events
func (h *Handler) RegisterEventRoutes(r chi.Router, writeLimit func(http.Handler) http.Handler) {
	r.With(writeLimit).Post("/{id}/messages", h.Create)
	r.Get("/{id}/messages", h.ListByEvent)
}

// Routes returns the public /messages router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Patch("/{id}/hearts", h.UpdateHearts)
	return r
}

// RegisterAdminRoutes attaches moderation routes to the admin router
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/events/{id}/messages", h.ListByEvent)
	r.Delete("/messages/{id}", h.Delete)
}
