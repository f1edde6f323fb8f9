package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes attaches public event routes to r. Creating an event needs
// adminAuth; verify-code is throttled by verifyLimit.
func (h *Handler) RegisterRoutes(r chi.Router, adminAuth, verifyLimit func(http.Handler) http.Handler) {
	r.With(adminAuth).Post("/", h.Create)
	r.Get("/lookup", h.Lookup)
	r.Get("/{id}", h.Get)
	r.Get("/{id}/qr.png", h.QRCode)
	r.With(verifyLimit).Post("/{id}/verify-code", h.VerifyCode)
}

// RegisterAdminRoutes attaches event management routes to the admin router
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/events", h.List)
	r.Post("/events", h.Create)
	r.Get("/events/{id}", h.AdminGet)
	r.Put("/events/{id}", h.Update)
	r.Patch("/events/{id}", h.Update)
	r.Delete("/events/{id}", h.Delete)
}
