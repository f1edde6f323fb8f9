package pricing

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc, _, _ := newTestService(t)
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Mount("/pricing", h.Routes())
	r.Route("/admin", h.RegisterAdminRoutes)
	return r
}

func TestHandlerUpsertThenList(t *testing.T) {
	router := newTestRouter(t)

	body := `{"plans":[{"name":"Basic","price":"299K","priceAmount":299000,"features":["Gallery online"]},{"name":"Premium","price":"599K","isPopular":true}]}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/pricing", strings.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("upsert: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pricing", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"total":2`) || !strings.Contains(w.Body.String(), `"isPopular":true`) {
		t.Fatalf("unexpected list body %s", w.Body.String())
	}
}

func TestHandlerUpsertValidates(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed", `{"plans":`, http.StatusBadRequest},
		{"empty list", `{"plans":[]}`, http.StatusUnprocessableEntity},
		{"missing price", `{"plans":[{"name":"Basic"}]}`, http.StatusUnprocessableEntity},
		{"duplicate", `{"plans":[{"name":"Basic","price":"1"},{"name":"BASIC","price":"2"}]}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/pricing", strings.NewReader(tt.body)))
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestHandlerPDFFlow(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pricing/pdf", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("before upload: expected 404, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "/admin/pricing/pdf", "file", "harga.pdf", []byte(samplePDF)))
	if w.Code != http.StatusCreated {
		t.Fatalf("upload: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pricing/pdf/download", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("download: expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("content type = %q", got)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "harga.pdf") {
		t.Errorf("content disposition = %q", w.Header().Get("Content-Disposition"))
	}
	if w.Body.String() != samplePDF {
		t.Error("downloaded body differs from upload")
	}
}

func TestHandlerUploadRejectsImage(t *testing.T) {
	router := newTestRouter(t)

	png := []byte("\x89PNG\r\n\x1a\n0000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "/admin/pricing/pdf", "pdf", "a.png", png))
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "INVALID_FILE_TYPE") {
		t.Fatalf("expected INVALID_FILE_TYPE, got %d: %s", w.Code, w.Body.String())
	}
}

func multipartRequest(t *testing.T, target, field, filename string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	fw.Write(data)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}
