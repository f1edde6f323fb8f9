package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hafiportrait/wedibox-api/internal/config"
	"github.com/hafiportrait/wedibox-api/internal/domain/admin"
	"github.com/hafiportrait/wedibox-api/internal/domain/content"
	"github.com/hafiportrait/wedibox-api/internal/domain/event"
	"github.com/hafiportrait/wedibox-api/internal/domain/inquiry"
	"github.com/hafiportrait/wedibox-api/internal/domain/message"
	"github.com/hafiportrait/wedibox-api/internal/domain/photo"
	"github.com/hafiportrait/wedibox-api/internal/domain/pricing"
	"github.com/hafiportrait/wedibox-api/internal/pkg/jwt"
)

type pingStub struct{ err error }

func (p pingStub) PingContext(context.Context) error { return p.err }

func passthrough(next http.Handler) http.Handler { return next }

// testDeps wires handlers without backing services; only routing and
// middleware that rejects before reaching a service are exercised.
func testDeps(t *testing.T, health pinger) *routerDeps {
	t.Helper()
	jwtSvc := jwt.NewService("secret", time.Hour, time.Hour)
	return &routerDeps{
		cfg: &config.Config{
			StorageDriver:    "local",
			LocalStoragePath: t.TempDir(),
			AllowedOrigins:   []string{"http://localhost:3000"},
		},
		jwt:          jwtSvc,
		health:       health,
		verifyLimit:  passthrough,
		uploadLimit:  passthrough,
		writeLimit:   passthrough,
		inquiryLimit: passthrough,
		event:        event.NewHandler(nil),
		photo:        photo.NewHandler(nil),
		message:      message.NewHandler(nil),
		admin:        admin.NewHandler(nil, jwtSvc),
		pricing:      pricing.NewHandler(nil),
		content:      content.NewHandler(nil),
		inquiry:      inquiry.NewHandler(nil),
	}
}

func TestRouterRegistersRoutes(t *testing.T) {
	r := newRouter(testDeps(t, pingStub{}))

	routes := map[string]bool{}
	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}

	want := []string{
		"GET /health",
		"POST /api/events/",
		"GET /api/events/lookup",
		"GET /api/events/{id}",
		"GET /api/events/{id}/qr.png",
		"POST /api/events/{id}/verify-code",
		"POST /api/events/{id}/photos",
		"GET /api/events/{id}/photos",
		"GET /api/events/{id}/albums/{album}/photos",
		"POST /api/events/{id}/messages",
		"GET /api/events/{id}/messages",
		"PATCH /api/photos/{id}/likes",
		"PATCH /api/messages/{id}/hearts",
		"GET /api/gallery/",
		"GET /api/pricing/",
		"GET /api/pricing/pdf",
		"GET /api/faq/",
		"GET /api/faq/categories",
		"GET /api/testimonials/",
		"POST /api/inquiries/",
		"POST /api/admin/auth/login",
		"GET /api/admin/auth/me",
		"GET /api/admin/stats",
		"GET /api/admin/events",
		"PUT /api/admin/events/{id}",
		"DELETE /api/admin/events/{id}",
		"POST /api/admin/events/{id}/photos",
		"DELETE /api/admin/photos/{id}",
		"GET /api/admin/recent-photos",
		"GET /api/admin/photos/homepage",
		"POST /api/admin/photos/homepage",
		"POST /api/admin/gallery",
		"DELETE /api/admin/messages/{id}",
		"POST /api/admin/pricing",
		"POST /api/admin/pricing/pdf",
		"POST /api/admin/testimonials",
		"DELETE /api/admin/testimonials/{id}",
		"GET /api/admin/inquiries",
		"PATCH /api/admin/inquiries/{id}/handled",
	}
	for _, route := range want {
		if !routes[route] {
			t.Errorf("route %q not registered", route)
		}
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := newRouter(testDeps(t, pingStub{}))

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/stats"},
		{http.MethodDelete, "/api/admin/events/e1"},
		{http.MethodPost, "/api/admin/pricing"},
		{http.MethodGet, "/api/admin/inquiries"},
		{http.MethodPost, "/api/events"},
	}
	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(p.method, p.path, nil))
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"up", nil, http.StatusOK},
		{"db down", errors.New("connection refused"), http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(testDeps(t, pingStub{err: tt.err}))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, w.Code)
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Error("request id header missing")
			}
		})
	}
}

func TestLocalUploadsServed(t *testing.T) {
	deps := testDeps(t, pingStub{})
	dir := filepath.Join(deps.cfg.LocalStoragePath, "events", "e1")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := newRouter(deps)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/events/e1/a.txt", nil))
	if w.Code != http.StatusOK || w.Body.String() != "hello" {
		t.Fatalf("file: %d %q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/events/", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("directory listing: expected 404, got %d", w.Code)
	}
}
