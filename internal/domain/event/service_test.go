package event

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/hafiportrait/wedibox-api/internal/pkg/jwt"
	"github.com/hafiportrait/wedibox-api/internal/pkg/qrcode"
)

type repoStub struct {
	events      map[string]*Event
	photoKeys   map[string][]string
	deleteCalls int
}

func newRepoStub() *repoStub {
	return &repoStub{events: map[string]*Event{}, photoKeys: map[string][]string{}}
}

func (r *repoStub) Create(_ context.Context, e *Event) error {
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *repoStub) GetByID(_ context.Context, id string) (*Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *repoStub) GetByShareableLink(_ context.Context, link string) (*Event, error) {
	for _, e := range r.events {
		if e.ShareableLink == link {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *repoStub) List(_ context.Context) ([]*Event, error) {
	var out []*Event
	for _, e := range r.events {
		if e.ID != HomepageEventID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *repoStub) Update(_ context.Context, e *Event) error {
	if _, ok := r.events[e.ID]; !ok {
		return ErrEventNotFound
	}
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *repoStub) DeleteCascade(_ context.Context, id string) ([]string, error) {
	r.deleteCalls++
	if _, ok := r.events[id]; !ok {
		return nil, ErrEventNotFound
	}
	delete(r.events, id)
	return r.photoKeys[id], nil
}

type removerStub struct {
	deleted []string
}

func (s *removerStub) Delete(_ context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	return nil
}

func newTestService() (*Service, *repoStub, *removerStub) {
	repo := newRepoStub()
	files := &removerStub{}
	svc := NewService(
		repo,
		qrcode.NewService("https://wedibox.app", "https://api.qrserver.com/v1/create-qr-code/"),
		jwt.NewService("secret", time.Hour, time.Hour),
		files,
	)
	return svc, repo, files
}

func TestCreateDerivesLinkAndQRCode(t *testing.T) {
	svc, _, _ := newTestService()

	e, err := svc.Create(context.Background(), &CreateEventRequest{Name: " Ana & Budi ", Date: "2025-06-14"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if e.Name != "Ana & Budi" {
		t.Errorf("name not trimmed: %q", e.Name)
	}
	if e.ShareableLink != "https://wedibox.app/event/"+e.ID {
		t.Errorf("shareable link = %q", e.ShareableLink)
	}
	if !strings.Contains(e.QRCode, "size=200x200&data=https%3A%2F%2Fwedibox.app%2Fevent%2F"+e.ID) {
		t.Errorf("qr code = %q", e.QRCode)
	}
	if len(e.AccessCode) != accessCodeLength {
		t.Errorf("generated access code %q", e.AccessCode)
	}
}

func TestCreateKeepsSuppliedAccessCode(t *testing.T) {
	svc, _, _ := newTestService()

	e, err := svc.Create(context.Background(), &CreateEventRequest{Name: "X", Date: "2025-01-01", AccessCode: "love2025"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e.AccessCode != "love2025" {
		t.Fatalf("access code = %q", e.AccessCode)
	}
}

func TestUpdateChangesOnlySuppliedFields(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	e, _ := svc.Create(ctx, &CreateEventRequest{Name: "Old", Date: "2025-01-01", AccessCode: "CODE1"})

	name := "New"
	premium := true
	updated, err := svc.Update(ctx, e.ID, &UpdateEventRequest{Name: &name, IsPremium: &premium})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Name != "New" || !updated.IsPremium {
		t.Errorf("fields not applied: %+v", updated)
	}
	if updated.Date != "2025-01-01" || updated.AccessCode != "CODE1" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
	if updated.ShareableLink != e.ShareableLink || updated.QRCode != e.QRCode {
		t.Error("derived fields must not change")
	}
}

func TestUpdateUnknownEvent(t *testing.T) {
	svc, _, _ := newTestService()
	name := "x"
	if _, err := svc.Update(context.Background(), "missing", &UpdateEventRequest{Name: &name}); err != ErrEventNotFound {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestDeleteRemovesStoredFiles(t *testing.T) {
	svc, repo, files := newTestService()
	ctx := context.Background()

	e, _ := svc.Create(ctx, &CreateEventRequest{Name: "X", Date: "2025-01-01"})
	repo.photoKeys[e.ID] = []string{"events/" + e.ID + "/p1.jpg"}

	if err := svc.Delete(ctx, e.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	want := []string{"events/" + e.ID + "/p1.jpg", "events/" + e.ID + "/p1_thumb.jpg"}
	if len(files.deleted) != len(want) {
		t.Fatalf("deleted = %v", files.deleted)
	}
	for i := range want {
		if files.deleted[i] != want[i] {
			t.Errorf("deleted[%d] = %q, want %q", i, files.deleted[i], want[i])
		}
	}

	if _, err := svc.Get(ctx, e.ID); err != ErrEventNotFound {
		t.Fatalf("expected event gone, got %v", err)
	}
}

func TestDeleteRejectsHomepageBucket(t *testing.T) {
	svc, repo, _ := newTestService()
	if err := svc.Delete(context.Background(), HomepageEventID); err != ErrReservedEvent {
		t.Fatalf("expected ErrReservedEvent, got %v", err)
	}
	if repo.deleteCalls != 0 {
		t.Fatal("repository must not be called")
	}
}

func TestGetHidesHomepageBucket(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.events[HomepageEventID] = &Event{ID: HomepageEventID}

	if _, err := svc.Get(context.Background(), HomepageEventID); err != ErrEventNotFound {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestVerifyAccessCode(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	e, _ := svc.Create(ctx, &CreateEventRequest{Name: "X", Date: "2025-01-01", AccessCode: "Ab12CD"})

	tests := []struct {
		name  string
		code  string
		valid bool
	}{
		{"exact match", "Ab12CD", true},
		{"case differs", "AB12CD", false},
		{"wrong code", "nope", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.VerifyAccessCode(ctx, e.ID, tt.code)
			if err != nil {
				t.Fatalf("VerifyAccessCode: %v", err)
			}
			if res.Valid != tt.valid {
				t.Fatalf("valid = %v, want %v", res.Valid, tt.valid)
			}
			if tt.valid && res.AccessToken == "" {
				t.Fatal("expected guest token")
			}
			if !tt.valid && res.AccessToken != "" {
				t.Fatal("token issued for wrong code")
			}
		})
	}

	if _, err := svc.VerifyAccessCode(ctx, "missing", "x"); err != ErrEventNotFound {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestVerifyAccessCodeAfterRotation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	tokens := jwt.NewService("secret", time.Hour, time.Hour)
	e, _ := svc.Create(ctx, &CreateEventRequest{Name: "X", Date: "2025-01-01", AccessCode: "OLD123"})

	newCode := "New789"
	if _, err := svc.Update(ctx, e.ID, &UpdateEventRequest{AccessCode: &newCode}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	old, err := svc.VerifyAccessCode(ctx, e.ID, "OLD123")
	if err != nil {
		t.Fatalf("VerifyAccessCode: %v", err)
	}
	if old.Valid || old.AccessToken != "" {
		t.Fatalf("old code still accepted: %+v", old)
	}

	res, err := svc.VerifyAccessCode(ctx, e.ID, newCode)
	if err != nil {
		t.Fatalf("VerifyAccessCode: %v", err)
	}
	if !res.Valid || res.AccessToken == "" || res.ExpiresAt == nil {
		t.Fatalf("new code rejected: %+v", res)
	}
	if left := time.Until(*res.ExpiresAt); left < 59*time.Minute || left > time.Hour {
		t.Fatalf("token expires in %v, want the guest TTL", left)
	}
	claims, err := tokens.ValidateGuestToken(res.AccessToken)
	if err != nil {
		t.Fatalf("ValidateGuestToken: %v", err)
	}
	if claims.EventID != e.ID {
		t.Fatalf("token bound to %q, want %q", claims.EventID, e.ID)
	}
}

func TestQRCodePNG(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	e, _ := svc.Create(ctx, &CreateEventRequest{Name: "X", Date: "2025-01-01"})

	png, err := svc.QRCodePNG(ctx, e.ID, 5000)
	if err != nil {
		t.Fatalf("QRCodePNG: %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Fatal("output is not a PNG")
	}
}

func TestGenerateAccessCodeCharset(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateAccessCode()
		if err != nil {
			t.Fatalf("GenerateAccessCode: %v", err)
		}
		for _, c := range code {
			if !strings.ContainsRune(accessCodeCharset, c) {
				t.Fatalf("unexpected character %q in %q", c, code)
			}
		}
	}
}
