package admin

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Role represents admin role
type Role string

const (
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	_, ok := RoleHierarchy[r]
	return ok
}

// AdminUser is a studio account allowed into the admin panel
type AdminUser struct {
	ID           uuid.UUID    `db:"id"`
	Email        string       `db:"email"`
	PasswordHash string       `db:"password_hash"`
	Role         Role         `db:"role"`
	Name         string       `db:"name"`
	IsActive     bool         `db:"is_active"`
	LastLoginAt  sql.NullTime `db:"last_login_at"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
}

// HasPermission checks if admin has a specific permission
func (a *AdminUser) HasPermission(perm Permission) bool {
	return RoleHasPermission(a.Role, perm)
}

// DashboardStats summarises the studio's activity
type DashboardStats struct {
	TotalEvents      int    `db:"total_events" json:"totalEvents"`
	TotalPhotos      int    `db:"total_photos" json:"totalPhotos"`
	TotalMessages    int    `db:"total_messages" json:"totalMessages"`
	ActiveEvents     int    `db:"active_events" json:"activeEvents"`
	PremiumEvents    int    `db:"premium_events" json:"premiumEvents"`
	OpenInquiries    int    `db:"open_inquiries" json:"openInquiries"`
	StorageUsedBytes int64  `db:"-" json:"storageUsedBytes"`
	StorageUsed      string `db:"-" json:"storageUsed"`
}
