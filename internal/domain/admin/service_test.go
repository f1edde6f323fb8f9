package admin

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/hafiportrait/wedibox-api/internal/pkg/password"
)

type repoStub struct {
	admins     map[uuid.UUID]*AdminUser
	stats      DashboardStats
	excludedID string
}

func newRepoStub() *repoStub {
	return &repoStub{admins: map[uuid.UUID]*AdminUser{}}
}

func (r *repoStub) CreateAdmin(_ context.Context, a *AdminUser) error {
	cp := *a
	r.admins[a.ID] = &cp
	return nil
}

func (r *repoStub) GetAdminByID(_ context.Context, id uuid.UUID) (*AdminUser, error) {
	if a, ok := r.admins[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *repoStub) GetAdminByEmail(_ context.Context, email string) (*AdminUser, error) {
	for _, a := range r.admins {
		if a.Email == strings.ToLower(email) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *repoStub) ListAdmins(_ context.Context) ([]*AdminUser, error) {
	out := []*AdminUser{}
	for _, a := range r.admins {
		out = append(out, a)
	}
	return out, nil
}

func (r *repoStub) UpdateAdmin(_ context.Context, a *AdminUser) error {
	cp := *a
	r.admins[a.ID] = &cp
	return nil
}

func (r *repoStub) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	r.admins[id].PasswordHash = hash
	return nil
}

func (r *repoStub) UpdateLastLogin(_ context.Context, _ uuid.UUID) error { return nil }

func (r *repoStub) GetDashboardStats(_ context.Context, excludeEventID string) (*DashboardStats, error) {
	r.excludedID = excludeEventID
	s := r.stats
	return &s, nil
}

type usageStub struct {
	bytes int64
	err   error
}

func (u usageStub) SumSizeBytes(context.Context) (int64, error) { return u.bytes, u.err }

func seedAdmin(t *testing.T, repo *repoStub, email, pwd string, role Role, active bool) *AdminUser {
	t.Helper()
	hash, err := password.Hash(pwd)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	a := &AdminUser{ID: uuid.New(), Email: email, PasswordHash: hash, Role: role, Name: "Studio", IsActive: active}
	repo.admins[a.ID] = a
	return a
}

func TestLogin(t *testing.T) {
	repo := newRepoStub()
	seedAdmin(t, repo, "owner@hafiportrait.com", "correct-horse", RoleOwner, true)
	seedAdmin(t, repo, "gone@hafiportrait.com", "correct-horse", RoleStaff, false)
	svc := NewService(repo, usageStub{})

	tests := []struct {
		name    string
		email   string
		pwd     string
		wantErr error
	}{
		{"valid", "Owner@Hafiportrait.com", "correct-horse", nil},
		{"wrong password", "owner@hafiportrait.com", "nope-nope", ErrInvalidCredentials},
		{"unknown email", "who@hafiportrait.com", "correct-horse", ErrInvalidCredentials},
		{"inactive", "gone@hafiportrait.com", "correct-horse", ErrAdminInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.email, tt.pwd)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetStats(t *testing.T) {
	repo := newRepoStub()
	repo.stats = DashboardStats{TotalEvents: 3, TotalPhotos: 10, TotalMessages: 4, ActiveEvents: 1}
	svc := NewService(repo, usageStub{bytes: 13002342})

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if repo.excludedID != "homepage" {
		t.Errorf("homepage bucket not excluded: %q", repo.excludedID)
	}
	if stats.TotalEvents != 3 || stats.StorageUsedBytes != 13002342 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.StorageUsed != "12.4 MB" {
		t.Errorf("storage used = %q", stats.StorageUsed)
	}
}

func TestGetStatsStorageError(t *testing.T) {
	svc := NewService(newRepoStub(), usageStub{err: errors.New("db down")})
	if _, err := svc.GetStats(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{10<<20 + 1, "10.0 MB"},
		{5 << 30, "5.0 GB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUpdateAdminHierarchy(t *testing.T) {
	repo := newRepoStub()
	staff := seedAdmin(t, repo, "staff@hafiportrait.com", "long-password", RoleStaff, true)
	owner := seedAdmin(t, repo, "owner@hafiportrait.com", "long-password", RoleOwner, true)
	svc := NewService(repo, usageStub{})
	ctx := context.Background()

	inactive := false
	if _, err := svc.UpdateAdmin(ctx, RoleAdmin, staff.ID, &UpdateAdminRequest{IsActive: &inactive}); err != nil {
		t.Fatalf("admin should manage staff: %v", err)
	}

	promote := string(RoleOwner)
	if _, err := svc.UpdateAdmin(ctx, RoleAdmin, staff.ID, &UpdateAdminRequest{Role: &promote}); !errors.Is(err, ErrCannotManageRole) {
		t.Fatalf("expected ErrCannotManageRole, got %v", err)
	}
	if _, err := svc.UpdateAdmin(ctx, RoleAdmin, owner.ID, &UpdateAdminRequest{IsActive: &inactive}); !errors.Is(err, ErrCannotManageRole) {
		t.Fatalf("expected ErrCannotManageRole, got %v", err)
	}
}

func TestEnsureAdmin(t *testing.T) {
	repo := newRepoStub()
	svc := NewService(repo, usageStub{})
	ctx := context.Background()

	a, created, err := svc.EnsureAdmin(ctx, "owner@hafiportrait.com", "first-password", "Hafi", RoleOwner)
	if err != nil || !created {
		t.Fatalf("EnsureAdmin create = %v, %v", created, err)
	}

	repo.admins[a.ID].IsActive = false
	_, created, err = svc.EnsureAdmin(ctx, "owner@hafiportrait.com", "second-password", "", RoleOwner)
	if err != nil || created {
		t.Fatalf("EnsureAdmin reset = %v, %v", created, err)
	}

	if _, err := svc.Login(ctx, "owner@hafiportrait.com", "second-password"); err != nil {
		t.Fatalf("login after reset: %v", err)
	}
}
