package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines admin data access
type Repository interface {
	CreateAdmin(ctx context.Context, admin *AdminUser) error
	GetAdminByID(ctx context.Context, id uuid.UUID) (*AdminUser, error)
	GetAdminByEmail(ctx context.Context, email string) (*AdminUser, error)
	ListAdmins(ctx context.Context) ([]*AdminUser, error)
	UpdateAdmin(ctx context.Context, admin *AdminUser) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error

	GetDashboardStats(ctx context.Context, excludeEventID string) (*DashboardStats, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates admin repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const adminColumns = `id, email, password_hash, role, name, is_active, last_login_at, created_at, updated_at`

func (r *repository) CreateAdmin(ctx context.Context, admin *AdminUser) error {
	query := `
		INSERT INTO admin_users (id, email, password_hash, role, name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		admin.ID, strings.ToLower(admin.Email), admin.PasswordHash, admin.Role,
		admin.Name, admin.IsActive, admin.CreatedAt, admin.UpdatedAt,
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrEmailTaken
	}
	return err
}

func (r *repository) GetAdminByID(ctx context.Context, id uuid.UUID) (*AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *repository) GetAdminByEmail(ctx context.Context, email string) (*AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE email = $1`
	return r.getOne(ctx, query, strings.ToLower(email))
}

func (r *repository) getOne(ctx context.Context, query string, arg interface{}) (*AdminUser, error) {
	var admin AdminUser
	if err := r.db.GetContext(ctx, &admin, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *repository) ListAdmins(ctx context.Context) ([]*AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users ORDER BY created_at`
	admins := []*AdminUser{}
	err := r.db.SelectContext(ctx, &admins, query)
	return admins, err
}

func (r *repository) UpdateAdmin(ctx context.Context, admin *AdminUser) error {
	query := `
		UPDATE admin_users
		SET name = $2, role = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, admin.ID, admin.Name, admin.Role, admin.IsActive)
	return err
}

func (r *repository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE admin_users SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, hash)
	return err
}

func (r *repository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `UPDATE admin_users SET last_login_at = NOW() WHERE id = $1`, id)
	return err
}

// Analytics

func (r *repository) GetDashboardStats(ctx context.Context, excludeEventID string) (*DashboardStats, error) {
	stats := &DashboardStats{}

	counts := []struct {
		dest  *int
		query string
		args  []interface{}
	}{
		{&stats.TotalEvents, `SELECT COUNT(*) FROM events WHERE id <> $1`, []interface{}{excludeEventID}},
		{&stats.ActiveEvents, `SELECT COUNT(*) FROM events WHERE id <> $1 AND date >= to_char(CURRENT_DATE, 'YYYY-MM-DD')`, []interface{}{excludeEventID}},
		{&stats.PremiumEvents, `SELECT COUNT(*) FROM events WHERE id <> $1 AND is_premium = true`, []interface{}{excludeEventID}},
		{&stats.TotalPhotos, `SELECT COUNT(*) FROM photos WHERE event_id <> $1`, []interface{}{excludeEventID}},
		{&stats.TotalMessages, `SELECT COUNT(*) FROM messages`, nil},
		{&stats.OpenInquiries, `SELECT COUNT(*) FROM inquiries WHERE handled_at IS NULL`, nil},
	}

	for _, c := range counts {
		if err := r.db.GetContext(ctx, c.dest, c.query, c.args...); err != nil {
			return nil, fmt.Errorf("dashboard stats: %w", err)
		}
	}

	return stats, nil
}
