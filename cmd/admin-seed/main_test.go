package main

import "testing"

func TestParseArgs(t *testing.T) {
	env := map[string]string{
		"ADMIN_EMAIL":    " Owner@Hafiportrait.com ",
		"ADMIN_PASSWORD": "from-env-secret",
	}
	getenv := func(k string) string { return env[k] }

	tests := []struct {
		name      string
		args      []string
		wantEmail string
		wantPwd   string
		wantRole  string
		wantName  string
	}{
		{"env defaults", nil, "owner@hafiportrait.com", "from-env-secret", "owner", "Studio Owner"},
		{"flags override env", []string{"-email", "staff@hafiportrait.com", "-password", "flag-secret-1", "-role", "staff", "-name", "Amina"}, "staff@hafiportrait.com", "flag-secret-1", "staff", "Amina"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := parseArgs(tt.args, getenv)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if a.email != tt.wantEmail || a.password != tt.wantPwd || a.role != tt.wantRole || a.name != tt.wantName {
				t.Fatalf("got %+v", a)
			}
		})
	}
}

func TestParseArgsUnknownFlag(t *testing.T) {
	if _, err := parseArgs([]string{"-bogus"}, func(string) string { return "" }); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}
