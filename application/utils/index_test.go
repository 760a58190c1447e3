package utils

import "testing"

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "bare ten digit us number",
			raw:  "4155551234",
			want: "+14155551234",
		},
		{
			name: "formatted ten digit us number",
			raw:  "(415) 555-1234",
			want: "+14155551234",
		},
		{
			name: "eleven digits with country code",
			raw:  "14155551234",
			want: "+14155551234",
		},
		{
			name: "already e164",
			raw:  "+14155551234",
			want: "+14155551234",
		},
		{
			name: "dots and spaces",
			raw:  "1 415.555.1234",
			want: "+14155551234",
		},
		{
			name:    "too short",
			raw:     "555-1234",
			wantErr: true,
		},
		{
			name:    "eleven digits not starting with one",
			raw:     "24155551234",
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "letters only",
			raw:     "call me maybe",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhoneNumber(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizePhoneNumber(%q) = %q, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizePhoneNumber(%q) returned error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Fatalf("NormalizePhoneNumber(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestRedirectWithReason(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		reason string
		want   string
	}{
		{
			name:   "bare path",
			base:   "/",
			reason: "missing-token",
			want:   "/?reason=missing-token",
		},
		{
			name:   "absolute url",
			base:   "https://example.com/start",
			reason: "auth-failed",
			want:   "https://example.com/start?reason=auth-failed",
		},
		{
			name:   "existing query is preserved",
			base:   "/start?utm=ad",
			reason: "auth-required",
			want:   "/start?reason=auth-required&utm=ad",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RedirectWithReason(tt.base, tt.reason); got != tt.want {
				t.Fatalf("RedirectWithReason(%q, %q) = %q, want %q", tt.base, tt.reason, got, tt.want)
			}
		})
	}
}
