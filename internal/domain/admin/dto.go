package admin

import (
	"time"

	"github.com/google/uuid"
)

// LoginRequest for POST /admin/auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// LoginResponse after successful login
type LoginResponse struct {
	AccessToken string         `json:"accessToken"`
	ExpiresIn   int            `json:"expiresIn"` // seconds
	Admin       *AdminResponse `json:"admin"`
}

// AdminResponse represents admin in API
type AdminResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Name        string     `json:"name"`
	IsActive    bool       `json:"isActive"`
	Permissions []string   `json:"permissions"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// AdminResponseFromEntity converts entity to response
func AdminResponseFromEntity(a *AdminUser) *AdminResponse {
	resp := &AdminResponse{
		ID:        a.ID,
		Email:     a.Email,
		Role:      string(a.Role),
		Name:      a.Name,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
	}

	if a.LastLoginAt.Valid {
		t := a.LastLoginAt.Time
		resp.LastLoginAt = &t
	}

	perms := RolePermissions[a.Role]
	resp.Permissions = make([]string, len(perms))
	for i, p := range perms {
		resp.Permissions[i] = string(p)
	}

	return resp
}

// CreateAdminRequest for POST /admin/admins
type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=10,max=128"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Role     string `json:"role" validate:"required,oneof=owner admin staff"`
}

// UpdateAdminRequest for PATCH /admin/admins/{id}
type UpdateAdminRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Role     *string `json:"role" validate:"omitempty,oneof=owner admin staff"`
	IsActive *bool   `json:"isActive"`
}
