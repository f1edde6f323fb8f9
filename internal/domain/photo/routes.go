package photo

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterEventRoutes attaches photo routes nested under /events
func (h *Handler) RegisterEventRoutes(r chi.Router, uploadLimit func(http.Handler) http.Handler) {
	r.With(uploadLimit).Post("/{id}/photos", h.Upload)
	r.Get("/{id}/photos", h.ListByEvent)
	r.Get("/{id}/albums/{album}/photos", h.ListByAlbum)
}

// Routes returns the public /photos router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Patch("/{id}/likes", h.UpdateLikes)
	return r
}

// GalleryRoutes returns the public marketing gallery router
func (h *Handler) GalleryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListHomepage)
	return r
}

// RegisterAdminRoutes attaches photo moderation routes to the admin router
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/events/{id}/photos", h.AdminUpload)
	r.Post("/events/{id}/photos/register", h.Register)
	r.Get("/events/{id}/photos", h.ListByEvent)
	r.Delete("/photos/{id}", h.Delete)
	r.Get("/recent-photos", h.ListRecent)
}

// RegisterGalleryAdminRoutes attaches marketing gallery management to the
// admin router
func (h *Handler) RegisterGalleryAdminRoutes(r chi.Router) {
	r.Get("/photos/homepage", h.ListHomepage)
	r.Post("/photos/homepage", h.UploadHomepage)
	r.Get("/gallery", h.ListHomepage)
	r.Post("/gallery", h.UploadHomepage)
}
