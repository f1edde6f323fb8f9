package pricing

import "github.com/go-chi/chi/v5"

// Routes returns the public /pricing router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListPlans)
	r.Get("/pdf", h.CurrentPDF)
	r.Get("/pdf/download", h.DownloadPDF)
	return r
}

// RegisterAdminRoutes attaches pricing management to the admin router
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/pricing", h.ListPlans)
	r.Post("/pricing", h.UpsertPlans)
	r.Put("/pricing", h.UpsertPlans)
	r.Post("/pricing/pdf", h.UploadPDF)
}
