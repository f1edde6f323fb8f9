package validator

import "testing"

type sample struct {
	Name       string `json:"name" validate:"required,max=10"`
	Date       string `json:"date" validate:"required,event_date"`
	Album      string `json:"album_name" validate:"omitempty,album"`
	AccessCode string `json:"access_code" validate:"omitempty,access_code"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		in        sample
		wantField string
	}{
		{name: "valid", in: sample{Name: "Sarah", Date: "2025-06-01", Album: "Tamu", AccessCode: "GUEST"}},
		{name: "missing name", in: sample{Date: "2025-06-01"}, wantField: "name"},
		{name: "bad date", in: sample{Name: "x", Date: "06/01/2025"}, wantField: "date"},
		{name: "album with slash", in: sample{Name: "x", Date: "2025-06-01", Album: "a/b"}, wantField: "album_name"},
		{name: "short code", in: sample{Name: "x", Date: "2025-06-01", AccessCode: "AB"}, wantField: "access_code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(&tt.in)
			if tt.wantField == "" {
				if errs != nil {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Fatalf("expected error on %q, got %v", tt.wantField, errs)
			}
		})
	}
}
