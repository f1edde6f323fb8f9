package admin

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hafiportrait/wedibox-api/internal/middleware"
	"github.com/hafiportrait/wedibox-api/internal/pkg/errorhandler"
	"github.com/hafiportrait/wedibox-api/internal/pkg/jwt"
	"github.com/hafiportrait/wedibox-api/internal/pkg/response"
	"github.com/hafiportrait/wedibox-api/internal/pkg/validator"
)

// Handler handles admin HTTP requests
type Handler struct {
	service *Service
	jwtSvc  *jwt.Service
}

// NewHandler creates admin handler
func NewHandler(service *Service, jwtSvc *jwt.Service) *Handler {
	return &Handler{
		service: service,
		jwtSvc:  jwtSvc,
	}
}

// --- Authentication ---

// Login handles POST /admin/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	admin, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Unauthorized(w, "Invalid email or password")
		case errors.Is(err, ErrAdminInactive):
			response.Forbidden(w, "Account is inactive")
		default:
			errorhandler.Internal(r.Context(), w, "admin.login", err)
		}
		return
	}

	token, err := h.jwtSvc.GenerateAdminToken(admin.ID, admin.Email, string(admin.Role))
	if err != nil {
		errorhandler.Internal(r.Context(), w, "admin.login.token", err)
		return
	}

	response.OK(w, &LoginResponse{
		AccessToken: token,
		ExpiresIn:   int(h.jwtSvc.AdminTTL().Seconds()),
		Admin:       AdminResponseFromEntity(admin),
	})
}

// Me handles GET /admin/auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	admin, err := h.service.GetAdminByID(r.Context(), middleware.GetAdminID(r.Context()))
	if err != nil {
		h.writeError(w, r, "admin.me", err)
		return
	}
	response.OK(w, AdminResponseFromEntity(admin))
}

// --- Admin Management ---

// ListAdmins handles GET /admin/admins
func (h *Handler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.service.ListAdmins(r.Context())
	if err != nil {
		errorhandler.Internal(r.Context(), w, "admin.list", err)
		return
	}

	items := make([]*AdminResponse, len(admins))
	for i, a := range admins {
		items[i] = AdminResponseFromEntity(a)
	}
	response.List(w, items, len(items))
}

// CreateAdmin handles POST /admin/admins
func (h *Handler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req CreateAdminRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	admin, err := h.service.CreateAdmin(r.Context(), GetAdminRole(r), &req)
	if err != nil {
		h.writeError(w, r, "admin.create", err)
		return
	}
	response.Created(w, AdminResponseFromEntity(admin))
}

// UpdateAdmin handles PATCH /admin/admins/{id}
func (h *Handler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid admin ID")
		return
	}

	var req UpdateAdminRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	admin, err := h.service.UpdateAdmin(r.Context(), GetAdminRole(r), targetID, &req)
	if err != nil {
		h.writeError(w, r, "admin.update", err)
		return
	}
	response.OK(w, AdminResponseFromEntity(admin))
}

// --- Analytics ---

// GetStats handles GET /admin/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		errorhandler.Internal(r.Context(), w, "admin.stats", err)
		return
	}
	response.OK(w, stats)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, ErrAdminNotFound):
		response.NotFound(w, "Admin not found")
	case errors.Is(err, ErrEmailTaken):
		response.Conflict(w, "Email already in use")
	case errors.Is(err, ErrCannotManageRole):
		response.Forbidden(w, "Cannot manage an admin with equal or higher role")
	case errors.Is(err, ErrInvalidRole):
		response.BadRequest(w, "Invalid role")
	default:
		errorhandler.Internal(r.Context(), w, op, err)
	}
}
