package pricing

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/hafiportrait/wedibox-api/internal/middleware"
	"github.com/hafiportrait/wedibox-api/internal/pkg/errorhandler"
	"github.com/hafiportrait/wedibox-api/internal/pkg/logger"
	"github.com/hafiportrait/wedibox-api/internal/pkg/response"
	"github.com/hafiportrait/wedibox-api/internal/pkg/storage"
	"github.com/hafiportrait/wedibox-api/internal/pkg/validator"
)

// Handler handles pricing HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates pricing handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListPlans handles GET /pricing
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.service.ListPlans(r.Context())
	if err != nil {
		errorhandler.Internal(r.Context(), w, "pricing.list", err)
		return
	}
	response.List(w, PlanResponsesFromEntities(plans), len(plans))
}

// UpsertPlans handles POST /admin/pricing
func (h *Handler) UpsertPlans(w http.ResponseWriter, r *http.Request) {
	var req UpsertPlansRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	plans, err := h.service.UpsertPlans(r.Context(), &req)
	if err != nil {
		h.writeError(w, r, "pricing.upsert", err)
		return
	}
	response.OK(w, PlanResponsesFromEntities(plans))
}

// UploadPDF handles POST /admin/pricing/pdf (multipart, field "file" or "pdf")
func (h *Handler) UploadPDF(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxDocumentSize+1<<20)

	if err := r.ParseMultipartForm(MaxDocumentSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(w, http.StatusBadRequest, "FILE_TOO_LARGE", "File is too large")
			return
		}
		response.BadRequest(w, "Invalid multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		file, header, err = r.FormFile("pdf")
	}
	if err != nil {
		response.Error(w, http.StatusBadRequest, "EMPTY_FILE", "Pricing document is required")
		return
	}
	defer file.Close()

	doc, err := h.service.UploadPDF(r.Context(), file, header.Filename, middleware.GetAdminID(r.Context()))
	if err != nil {
		h.writeError(w, r, "pricing.upload_pdf", err)
		return
	}
	response.Created(w, DocumentResponseFromEntity(doc))
}

// CurrentPDF handles GET /pricing/pdf
func (h *Handler) CurrentPDF(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.CurrentPDF(r.Context())
	if err != nil {
		h.writeError(w, r, "pricing.current_pdf", err)
		return
	}
	response.OK(w, DocumentResponseFromEntity(doc))
}

// DownloadPDF handles GET /pricing/pdf/download
func (h *Handler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	doc, rc, err := h.service.OpenCurrentPDF(r.Context())
	if err != nil {
		h.writeError(w, r, "pricing.download_pdf", err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", downloadName(doc)))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		logger.FromContext(r.Context()).Warn().Err(err).Msg("Pricing document stream interrupted")
	}
}

func downloadName(doc *Document) string {
	if doc.OriginalName != "" {
		return doc.OriginalName
	}
	return "pricing.pdf"
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, ErrNoDocument):
		response.NotFound(w, "No pricing document uploaded yet")
	case errors.Is(err, ErrDuplicatePlan):
		response.BadRequest(w, "Plan names must be unique")
	case errors.Is(err, storage.ErrFileTooLarge):
		response.Error(w, http.StatusBadRequest, "FILE_TOO_LARGE", "Pricing document exceeds 10 MB")
	case errors.Is(err, storage.ErrInvalidMimeType):
		response.Error(w, http.StatusBadRequest, "INVALID_FILE_TYPE", "Only PDF documents are allowed")
	case errors.Is(err, storage.ErrEmptyFile), errors.Is(err, ErrMissingFile):
		response.Error(w, http.StatusBadRequest, "EMPTY_FILE", "Pricing document is empty")
	default:
		errorhandler.Internal(r.Context(), w, op, err)
	}
}
