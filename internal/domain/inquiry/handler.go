package inquiry

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hafiportrait/wedibox-api/internal/middleware"
	"github.com/hafiportrait/wedibox-api/internal/pkg/errorhandler"
	"github.com/hafiportrait/wedibox-api/internal/pkg/ratelimit"
	"github.com/hafiportrait/wedibox-api/internal/pkg/response"
	"github.com/hafiportrait/wedibox-api/internal/pkg/validator"
)

// Handler handles inquiry HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates inquiry handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Submit handles POST /inquiries (public)
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req CreateInquiryRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	req.Normalize()
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	inq, err := h.svc.Submit(r.Context(), &req, ratelimit.ClientIP(r), r.UserAgent())
	if err != nil {
		errorhandler.Internal(r.Context(), w, "inquiry.submit", err)
		return
	}

	response.Created(w, &InquirySubmittedResponse{
		InquiryID: inq.ID,
		Message:   "Thank you! We will get back to you within 24 hours.",
	})
}

// List handles GET /admin/inquiries
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	offset := 0

	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	items, total, err := h.svc.List(r.Context(), r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		h.writeError(w, r, "inquiry.list", err)
		return
	}

	out := make([]*InquiryResponse, len(items))
	for i, inq := range items {
		out[i] = ToResponse(inq)
	}
	response.List(w, out, total)
}

// GetByID handles GET /admin/inquiries/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid inquiry ID")
		return
	}

	inq, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "inquiry.get", err)
		return
	}
	response.OK(w, ToResponse(inq))
}

// MarkHandled handles PATCH /admin/inquiries/{id}/handled
func (h *Handler) MarkHandled(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid inquiry ID")
		return
	}

	inq, err := h.svc.MarkHandled(r.Context(), id, middleware.GetAdminID(r.Context()))
	if err != nil {
		h.writeError(w, r, "inquiry.mark_handled", err)
		return
	}
	response.OK(w, ToResponse(inq))
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, ErrInquiryNotFound):
		response.NotFound(w, "Inquiry not found")
	case errors.Is(err, ErrInvalidStatus):
		response.BadRequest(w, err.Error())
	default:
		errorhandler.Internal(r.Context(), w, op, err)
	}
}
