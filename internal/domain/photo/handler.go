package photo

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hafiportrait/wedibox-api/internal/domain/event"
	"github.com/hafiportrait/wedibox-api/internal/middleware"
	"github.com/hafiportrait/wedibox-api/internal/pkg/errorhandler"
	"github.com/hafiportrait/wedibox-api/internal/pkg/response"
	"github.com/hafiportrait/wedibox-api/internal/pkg/storage"
	"github.com/hafiportrait/wedibox-api/internal/pkg/validator"
)

const multipartMemory = 32 << 20

// Handler handles photo HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates photo handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Upload handles POST /events/{id}/photos (multipart)
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	in, cleanup, ok := h.parseUpload(w, r)
	if !ok {
		return
	}
	defer cleanup()

	in.EventID = chi.URLParam(r, "id")
	in.AccessCode = r.FormValue("accessCode")
	in.GuestEventID = middleware.GuestEventID(r.Context())
	in.IsAdmin = middleware.IsAdmin(r.Context())

	p, err := h.service.Upload(r.Context(), in)
	if err != nil {
		h.writeError(w, r, "photo.upload", err)
		return
	}
	response.Created(w, PhotoResponseFromEntity(p))
}

// AdminUpload handles POST /admin/events/{id}/photos; no access code needed
func (h *Handler) AdminUpload(w http.ResponseWriter, r *http.Request) {
	in, cleanup, ok := h.parseUpload(w, r)
	if !ok {
		return
	}
	defer cleanup()

	in.EventID = chi.URLParam(r, "id")
	in.IsAdmin = true

	p, err := h.service.Upload(r.Context(), in)
	if err != nil {
		h.writeError(w, r, "photo.admin_upload", err)
		return
	}
	response.Created(w, PhotoResponseFromEntity(p))
}

// Register handles POST /admin/events/{id}/photos/register (JSON)
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req AddPhotoRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	p, err := h.service.Add(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.writeError(w, r, "photo.add", err)
		return
	}
	response.Created(w, PhotoResponseFromEntity(p))
}

// UploadHomepage handles POST /admin/photos/homepage and POST /admin/gallery
func (h *Handler) UploadHomepage(w http.ResponseWriter, r *http.Request) {
	in, cleanup, ok := h.parseUpload(w, r)
	if !ok {
		return
	}
	defer cleanup()

	category := r.FormValue("category")
	if category == "" {
		category = in.AlbumName
	}
	if err := validator.ValidateVar(category, "album"); err != nil {
		response.ValidationError(w, map[string]string{"category": "Invalid category"})
		return
	}

	p, err := h.service.UploadHomepage(r.Context(), category, in)
	if err != nil {
		h.writeError(w, r, "photo.upload_homepage", err)
		return
	}
	response.Created(w, PhotoResponseFromEntity(p))
}

// ListByEvent handles GET /events/{id}/photos
func (h *Handler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	photos, err := h.service.ListByEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "photo.list", err)
		return
	}
	response.List(w, PhotoResponsesFromEntities(photos), len(photos))
}

// ListByAlbum handles GET /events/{id}/albums/{album}/photos
func (h *Handler) ListByAlbum(w http.ResponseWriter, r *http.Request) {
	album, err := albumParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid album name")
		return
	}

	photos, err := h.service.ListByAlbum(r.Context(), chi.URLParam(r, "id"), album)
	if err != nil {
		h.writeError(w, r, "photo.list_album", err)
		return
	}
	response.List(w, PhotoResponsesFromEntities(photos), len(photos))
}

// albumParam returns the decoded album segment. chi matches on RawPath when
// the request carries escapes such as %2F, leaving the param encoded.
func albumParam(r *http.Request) (string, error) {
	album := chi.URLParam(r, "album")
	if r.URL.RawPath == "" {
		return album, nil
	}
	return url.PathUnescape(album)
}

// ListHomepage handles GET /gallery?category= and GET /admin/photos/homepage
func (h *Handler) ListHomepage(w http.ResponseWriter, r *http.Request) {
	photos, err := h.service.ListHomepage(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		errorhandler.Internal(r.Context(), w, "photo.list_homepage", err)
		return
	}
	response.List(w, PhotoResponsesFromEntities(photos), len(photos))
}

// ListRecent handles GET /admin/recent-photos?limit=
func (h *Handler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	photos, err := h.service.ListRecent(r.Context(), limit)
	if err != nil {
		errorhandler.Internal(r.Context(), w, "photo.list_recent", err)
		return
	}
	response.List(w, PhotoResponsesFromEntities(photos), len(photos))
}

// UpdateLikes handles PATCH /photos/{id}/likes
func (h *Handler) UpdateLikes(w http.ResponseWriter, r *http.Request) {
	var req LikesRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "likes must be a number")
		return
	}

	if (req.Delta == nil) == (req.Likes == nil) {
		response.BadRequest(w, "Provide exactly one of delta or likes")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	var (
		p   *Photo
		err error
	)
	id := chi.URLParam(r, "id")
	if req.Delta != nil {
		p, err = h.service.Like(r.Context(), id, *req.Delta)
	} else {
		p, err = h.service.SetLikes(r.Context(), id, *req.Likes)
	}
	if err != nil {
		h.writeError(w, r, "photo.likes", err)
		return
	}
	response.OK(w, PhotoResponseFromEntity(p))
}

// Delete handles DELETE /admin/photos/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, "photo.delete", err)
		return
	}
	response.OK(w, map[string]string{"status": "deleted"})
}

// parseUpload limits the body, parses the form and opens the file part.
// It writes the error response itself when ok is false.
func (h *Handler) parseUpload(w http.ResponseWriter, r *http.Request) (in *UploadInput, cleanup func(), ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.service.maxSize+1<<20)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(w, http.StatusBadRequest, "FILE_TOO_LARGE", "File is too large")
			return nil, nil, false
		}
		response.BadRequest(w, "Invalid multipart form")
		return nil, nil, false
	}

	file, header, err := r.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) {
		file, header, err = r.FormFile("file")
	}
	if err != nil {
		response.Error(w, http.StatusBadRequest, "EMPTY_FILE", "Photo file is required")
		return nil, nil, false
	}

	in = &UploadInput{
		File:         file,
		OriginalName: header.Filename,
		UploaderName: r.FormValue("uploaderName"),
		AlbumName:    r.FormValue("albumName"),
	}

	if errs := validator.Validate(&uploadFields{UploaderName: in.UploaderName, AlbumName: in.AlbumName}); errs != nil {
		file.Close()
		response.ValidationError(w, errs)
		return nil, nil, false
	}

	cleanup = func() {
		file.Close()
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}
	return in, cleanup, true
}

type uploadFields struct {
	UploaderName string `json:"uploaderName" validate:"max=100"`
	AlbumName    string `json:"albumName" validate:"album"`
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, event.ErrEventNotFound):
		response.NotFound(w, "Event not found")
	case errors.Is(err, ErrPhotoNotFound):
		response.NotFound(w, "Photo not found")
	case errors.Is(err, ErrAccessDenied):
		response.Forbidden(w, "A valid access code is required to upload to this album")
	case errors.Is(err, ErrAdminOnlyAlbum):
		response.Forbidden(w, "Only the studio can upload to this album")
	case errors.Is(err, ErrInvalidCounter):
		response.BadRequest(w, err.Error())
	case errors.Is(err, storage.ErrFileTooLarge):
		response.Error(w, http.StatusBadRequest, "FILE_TOO_LARGE", "File exceeds the upload limit")
	case errors.Is(err, storage.ErrInvalidMimeType):
		response.Error(w, http.StatusBadRequest, "INVALID_FILE_TYPE", "Only image files are allowed")
	case errors.Is(err, storage.ErrEmptyFile), errors.Is(err, ErrMissingFile):
		response.Error(w, http.StatusBadRequest, "EMPTY_FILE", "Photo file is empty")
	default:
		errorhandler.Internal(r.Context(), w, op, err)
	}
}
