package event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hafiportrait/wedibox-api/internal/pkg/errorhandler"
	"github.com/hafiportrait/wedibox-api/internal/pkg/response"
	"github.com/hafiportrait/wedibox-api/internal/pkg/validator"
)

// Handler handles event HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates event handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /events
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		errorhandler.LogValidationError(r.Context(), errs)
		response.ValidationError(w, errs)
		return
	}

	e, err := h.service.Create(r.Context(), &req)
	if err != nil {
		errorhandler.Internal(r.Context(), w, "event.create", err)
		return
	}

	response.Created(w, AdminEventResponseFromEntity(e))
}

// Get handles GET /events/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "event.get", err)
		return
	}
	response.OK(w, EventResponseFromEntity(e))
}

// Lookup handles GET /events/lookup?link=
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	link := r.URL.Query().Get("link")
	if link == "" {
		response.BadRequest(w, "link query parameter is required")
		return
	}

	e, err := h.service.GetByShareableLink(r.Context(), link)
	if err != nil {
		h.writeError(w, r, "event.lookup", err)
		return
	}
	response.OK(w, EventResponseFromEntity(e))
}

// QRCode handles GET /events/{id}/qr.png?size=
func (h *Handler) QRCode(w http.ResponseWriter, r *http.Request) {
	size := 0
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "size must be an integer")
			return
		}
		size = n
	}

	png, err := h.service.QRCodePNG(r.Context(), chi.URLParam(r, "id"), size)
	if err != nil {
		h.writeError(w, r, "event.qr", err)
		return
	}
	response.Binary(w, "image/png", png)
}

// VerifyCode handles POST /events/{id}/verify-code
func (h *Handler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req VerifyCodeRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := h.service.VerifyAccessCode(r.Context(), chi.URLParam(r, "id"), req.AccessCode)
	if err != nil {
		h.writeError(w, r, "event.verify_code", err)
		return
	}
	response.OK(w, result)
}

// List handles GET /admin/events
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.List(r.Context())
	if err != nil {
		errorhandler.Internal(r.Context(), w, "event.list", err)
		return
	}

	items := make([]*AdminEventResponse, len(events))
	for i, e := range events {
		items[i] = AdminEventResponseFromEntity(e)
	}
	response.List(w, items, len(items))
}

// AdminGet handles GET /admin/events/{id}
func (h *Handler) AdminGet(w http.ResponseWriter, r *http.Request) {
	e, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "event.admin_get", err)
		return
	}
	response.OK(w, AdminEventResponseFromEntity(e))
}

// Update handles PUT /admin/events/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateEventRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if req.IsEmpty() {
		response.BadRequest(w, "No fields to update")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	e, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.writeError(w, r, "event.update", err)
		return
	}
	response.OK(w, AdminEventResponseFromEntity(e))
}

// Delete handles DELETE /admin/events/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, "event.delete", err)
		return
	}
	response.OK(w, map[string]string{"status": "deleted"})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, ErrEventNotFound):
		response.NotFound(w, "Event not found")
	case errors.Is(err, ErrReservedEvent):
		response.BadRequest(w, "The homepage gallery bucket cannot be changed")
	default:
		errorhandler.Internal(r.Context(), w, op, err)
	}
}
