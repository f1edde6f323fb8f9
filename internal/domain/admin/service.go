package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hafiportrait/wedibox-api/internal/domain/event"
	"github.com/hafiportrait/wedibox-api/internal/pkg/password"
)

// StorageUsage reports bytes held by uploaded photos
type StorageUsage interface {
	SumSizeBytes(ctx context.Context) (int64, error)
}

// Service handles admin business logic
type Service struct {
	repo    Repository
	storage StorageUsage
}

// NewService creates admin service
func NewService(repo Repository, storage StorageUsage) *Service {
	return &Service{repo: repo, storage: storage}
}

// --- Authentication ---

// Login authenticates an admin by email and password
func (s *Service) Login(ctx context.Context, email, pwd string) (*AdminUser, error) {
	admin, err := s.repo.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		// keep timing close to the known-email path
		_ = password.Verify(pwd, dummyHash)
		return nil, ErrInvalidCredentials
	}

	if !password.Verify(pwd, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if !admin.IsActive {
		return nil, ErrAdminInactive
	}

	if err := s.repo.UpdateLastLogin(ctx, admin.ID); err != nil {
		log.Warn().Err(err).Str("admin_id", admin.ID.String()).Msg("Failed to record last login")
	}

	return admin, nil
}

// bcrypt hash of a random string
const dummyHash = "$2a$12$C6UzMDM.H6dfI/f/IKcEeO5j8QVC0qbwD7g2jHjW5YfDkAwPqM0nS"

// GetAdminByID returns an admin by id
func (s *Service) GetAdminByID(ctx context.Context, id uuid.UUID) (*AdminUser, error) {
	admin, err := s.repo.GetAdminByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}
	return admin, nil
}

// --- Admin Management ---

// CreateAdmin creates a new admin user
func (s *Service) CreateAdmin(ctx context.Context, actorRole Role, req *CreateAdminRequest) (*AdminUser, error) {
	role := Role(req.Role)
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if actorRole != "" && actorRole != RoleOwner && !CanManage(actorRole, role) {
		return nil, ErrCannotManageRole
	}

	existing, err := s.repo.GetAdminByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	admin := &AdminUser{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         role,
		Name:         strings.TrimSpace(req.Name),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.CreateAdmin(ctx, admin); err != nil {
		return nil, err
	}

	log.Info().Str("admin_id", admin.ID.String()).Str("role", string(role)).Msg("Admin created")
	return admin, nil
}

// UpdateAdmin changes name, role or active flag of a lower-ranked admin
func (s *Service) UpdateAdmin(ctx context.Context, actorRole Role, targetID uuid.UUID, req *UpdateAdminRequest) (*AdminUser, error) {
	admin, err := s.GetAdminByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if !CanManage(actorRole, admin.Role) {
		return nil, ErrCannotManageRole
	}

	if req.Name != nil {
		admin.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		role := Role(*req.Role)
		if !role.IsValid() {
			return nil, ErrInvalidRole
		}
		if !CanManage(actorRole, role) {
			return nil, ErrCannotManageRole
		}
		admin.Role = role
	}
	if req.IsActive != nil {
		admin.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateAdmin(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// ListAdmins returns all admins
func (s *Service) ListAdmins(ctx context.Context) ([]*AdminUser, error) {
	return s.repo.ListAdmins(ctx)
}

// EnsureAdmin creates the admin or resets its password and reactivates it.
// Used by the seed command.
func (s *Service) EnsureAdmin(ctx context.Context, email, pwd, name string, role Role) (*AdminUser, bool, error) {
	if !role.IsValid() {
		return nil, false, ErrInvalidRole
	}

	existing, err := s.repo.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}

	if existing == nil {
		admin, err := s.CreateAdmin(ctx, "", &CreateAdminRequest{Email: email, Password: pwd, Name: name, Role: string(role)})
		return admin, true, err
	}

	hash, err := password.Hash(pwd)
	if err != nil {
		return nil, false, err
	}
	if err := s.repo.UpdatePassword(ctx, existing.ID, hash); err != nil {
		return nil, false, err
	}

	existing.Role = role
	existing.IsActive = true
	if name != "" {
		existing.Name = name
	}
	if err := s.repo.UpdateAdmin(ctx, existing); err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// --- Analytics ---

// GetStats returns dashboard counters and storage usage
func (s *Service) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats, err := s.repo.GetDashboardStats(ctx, event.HomepageEventID)
	if err != nil {
		return nil, err
	}

	used, err := s.storage.SumSizeBytes(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage usage: %w", err)
	}
	stats.StorageUsedBytes = used
	stats.StorageUsed = FormatBytes(used)

	return stats, nil
}

// FormatBytes renders a byte count with a binary unit, e.g. "12.4 MB"
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
