package event

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func passthrough(next http.Handler) http.Handler { return next }

func newTestRouter(t *testing.T) (http.Handler, *Service) {
	t.Helper()
	svc, _, _ := newTestService()
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Route("/events", func(r chi.Router) {
		h.RegisterRoutes(r, passthrough, passthrough)
	})
	r.Route("/admin", h.RegisterAdminRoutes)
	return r, svc
}

func TestHandlerCreateValidates(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(`{"name":"X","date":"14-06-2025"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"date"`) {
		t.Fatalf("expected date field error: %s", w.Body.String())
	}
}

func TestHandlerGetHidesAccessCode(t *testing.T) {
	router, svc := newTestRouter(t)
	e, _ := svc.Create(context.Background(), &CreateEventRequest{Name: "X", Date: "2025-01-01", AccessCode: "SECRET1"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events/"+e.ID, nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "SECRET1") {
		t.Fatal("public event response leaked the access code")
	}
}

func TestHandlerGetUnknown(t *testing.T) {
	router, _ := newTestRouter(t)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestHandlerVerifyCode(t *testing.T) {
	router, svc := newTestRouter(t)
	e, _ := svc.Create(context.Background(), &CreateEventRequest{Name: "X", Date: "2025-01-01", AccessCode: "Ab12CD"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/events/"+e.ID+"/verify-code", strings.NewReader(`{"accessCode":"Ab12CD"}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Data VerifyCodeResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Data.Valid || body.Data.AccessToken == "" {
		t.Fatalf("unexpected response %+v", body.Data)
	}
}

func TestHandlerUpdateRequiresFields(t *testing.T) {
	router, svc := newTestRouter(t)
	e, _ := svc.Create(context.Background(), &CreateEventRequest{Name: "X", Date: "2025-01-01"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/admin/events/"+e.ID, strings.NewReader(`{}`)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHandlerDeleteHomepage(t *testing.T) {
	router, _ := newTestRouter(t)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/events/"+HomepageEventID, nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHandlerQRCode(t *testing.T) {
	router, svc := newTestRouter(t)
	e, _ := svc.Create(context.Background(), &CreateEventRequest{Name: "X", Date: "2025-01-01"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events/"+e.ID+"/qr.png?size=300", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type = %q", ct)
	}
}
