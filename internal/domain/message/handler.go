package message

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hafiportrait/wedibox-api/internal/domain/event"
	"github.com/hafiportrait/wedibox-api/internal/pkg/errorhandler"
	"github.com/hafiportrait/wedibox-api/internal/pkg/response"
	"github.com/hafiportrait/wedibox-api/internal/pkg/validator"
)

// Handler handles guestbook HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates message handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /events/{id}/messages
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMessageRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	req.GuestName = strings.TrimSpace(req.GuestName)
	req.Message = strings.TrimSpace(req.Message)
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	m, err := h.service.Add(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.writeError(w, r, "message.create", err)
		return
	}
	response.Created(w, MessageResponseFromEntity(m))
}

// ListByEvent handles GET /events/{id}/messages
func (h *Handler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.ListByEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "message.list", err)
		return
	}

	items := make([]*MessageResponse, len(messages))
	for i, m := range messages {
		items[i] = MessageResponseFromEntity(m)
	}
	response.List(w, items, len(items))
}

// UpdateHearts handles PATCH /messages/{id}/hearts
func (h *Handler) UpdateHearts(w http.ResponseWriter, r *http.Request) {
	var req HeartsRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "hearts must be a number")
		return
	}

	if (req.Delta == nil) == (req.Hearts == nil) {
		response.BadRequest(w, "Provide exactly one of delta or hearts")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	var (
		m   *Message
		err error
	)
	id := chi.URLParam(r, "id")
	if req.Delta != nil {
		m, err = h.service.Heart(r.Context(), id, *req.Delta)
	} else {
		m, err = h.service.SetHearts(r.Context(), id, *req.Hearts)
	}
	if err != nil {
		h.writeError(w, r, "message.hearts", err)
		return
	}
	response.OK(w, MessageResponseFromEntity(m))
}

// Delete handles DELETE /admin/messages/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, "message.delete", err)
		return
	}
	response.OK(w, map[string]string{"status": "deleted"})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, event.ErrEventNotFound):
		response.NotFound(w, "Event not found")
	case errors.Is(err, ErrMessageNotFound):
		response.NotFound(w, "Message not found")
	case errors.Is(err, ErrInvalidCounter):
		response.BadRequest(w, err.Error())
	default:
		errorhandler.Internal(r.Context(), w, op, err)
	}
}
