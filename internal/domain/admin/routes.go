package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the /admin router. Domain handlers register their admin
// routes through mount, each wrapped with the permission it needs.
func (h *Handler) Routes(mounts ...Mount) chi.Router {
	r := chi.NewRouter()

	// Auth routes (no auth required)
	r.Post("/auth/login", h.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(h.jwtSvc, h.service))

		r.Get("/auth/me", h.Me)

		r.With(RequirePermission(PermViewAnalytics)).Get("/stats", h.GetStats)

		r.Route("/admins", func(r chi.Router) {
			r.Use(RequirePermission(PermManageAdmins))
			r.Get("/", h.ListAdmins)
			r.Post("/", h.CreateAdmin)
			r.Patch("/{id}", h.UpdateAdmin)
		})

		for _, m := range mounts {
			r.Group(func(r chi.Router) {
				r.Use(RequirePermission(m.Permission))
				m.Register(r)
			})
		}
	})

	return r
}

// Mount attaches a domain's admin routes behind a permission
type Mount struct {
	Permission Permission
	Register   func(r chi.Router)
}

// Authenticated returns the admin auth middleware for routes outside /admin
func (h *Handler) Authenticated() func(http.Handler) http.Handler {
	return AuthMiddleware(h.jwtSvc, h.service)
}
