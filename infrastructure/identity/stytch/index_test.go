package stytch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"valuegate.jvcp.co/infrastructure/identity"
)

// capturedRequest records what the adapter last put on the wire.
type capturedRequest struct {
	path string
	body map[string]any
}

func stubServer(t *testing.T, statusCode int, payload map[string]any) (*Service, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.body = map[string]any{}
		json.NewDecoder(r.Body).Decode(&captured.body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(server.Close)
	return NewServiceWithHost(server.URL, time.Second), captured
}

func TestSendMagicLink(t *testing.T) {
	service, captured := stubServer(t, http.StatusOK, map[string]any{
		"request_id": "request-abc",
		"user_id":    "user-1",
	})
	requestID, err := service.SendMagicLink(context.Background(), "owner@example.com", "https://app/consume", "https://app/consume")
	if err != nil {
		t.Fatalf("SendMagicLink returned error: %v", err)
	}
	if requestID != "request-abc" {
		t.Fatalf("request id = %q, want %q", requestID, "request-abc")
	}
	if captured.path != "/v1/magic_links/email/login_or_create" {
		t.Fatalf("adapter called %q, want the login-or-create endpoint", captured.path)
	}
	if captured.body["login_magic_link_url"] != "https://app/consume" {
		t.Fatalf("login redirect on the wire = %v, want the consume url", captured.body["login_magic_link_url"])
	}
}

func TestSendOtpForwardsSessionBinding(t *testing.T) {
	service, captured := stubServer(t, http.StatusOK, map[string]any{
		"phone_id": "phone-1",
	})
	sessionToken := "sess-1"
	if _, err := service.SendOtp(context.Background(), "+14155551234", &sessionToken); err != nil {
		t.Fatalf("SendOtp returned error: %v", err)
	}
	if captured.body["session_token"] != "sess-1" {
		t.Fatalf("session token on the wire = %v, want %q", captured.body["session_token"], "sess-1")
	}

	service, captured = stubServer(t, http.StatusOK, map[string]any{
		"phone_id": "phone-1",
	})
	if _, err := service.SendOtp(context.Background(), "+14155551234", nil); err != nil {
		t.Fatalf("SendOtp returned error: %v", err)
	}
	if _, present := captured.body["session_token"]; present {
		t.Fatal("unbound send leaked a session_token field")
	}
}

func TestAuthenticateMagicLinkSessionNormalization(t *testing.T) {
	tests := []struct {
		name      string
		payload   map[string]any
		wantToken string
		wantErr   error
	}{
		{
			name: "opaque session token wins",
			payload: map[string]any{
				"user_id":       "user-1",
				"session_token": "opaque-token",
				"session_jwt":   "jwt-token",
			},
			wantToken: "opaque-token",
		},
		{
			name: "session jwt is the fallback",
			payload: map[string]any{
				"user_id":     "user-1",
				"session_jwt": "jwt-token",
			},
			wantToken: "jwt-token",
		},
		{
			name: "no session material is an explicit error",
			payload: map[string]any{
				"user_id": "user-1",
			},
			wantErr: identity.ErrNoSessionIssued,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := stubServer(t, http.StatusOK, tt.payload)
			session, err := service.AuthenticateMagicLink(context.Background(), "some-token", 60)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("AuthenticateMagicLink returned error: %v", err)
			}
			if session.SessionToken != tt.wantToken {
				t.Fatalf("SessionToken = %q, want %q", session.SessionToken, tt.wantToken)
			}
			if session.SubjectID != "user-1" {
				t.Fatalf("SubjectID = %q, want %q", session.SubjectID, "user-1")
			}
		})
	}
}

func TestAuthenticateMagicLinkRejection(t *testing.T) {
	service, _ := stubServer(t, http.StatusUnauthorized, map[string]any{
		"error_type":    "unable_to_auth_magic_link",
		"error_message": "token already used",
	})
	_, err := service.AuthenticateMagicLink(context.Background(), "stale-token", 60)
	if !errors.Is(err, identity.ErrRejected) {
		t.Fatalf("error = %v, want ErrRejected", err)
	}
}

func TestAuthenticateMagicLinkProviderFailure(t *testing.T) {
	service, _ := stubServer(t, http.StatusInternalServerError, map[string]any{
		"error_type": "internal_server_error",
	})
	_, err := service.AuthenticateMagicLink(context.Background(), "some-token", 60)
	if err == nil {
		t.Fatal("provider 5xx produced no error")
	}
	if errors.Is(err, identity.ErrRejected) {
		t.Fatal("provider 5xx was misread as a credential rejection")
	}
}

func TestSendOtpChallengeIDFallback(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		want    string
		wantErr bool
	}{
		{
			name:    "phone id wins",
			payload: map[string]any{"phone_id": "phone-1", "method_id": "method-1"},
			want:    "phone-1",
		},
		{
			name:    "method id is the fallback",
			payload: map[string]any{"method_id": "method-1"},
			want:    "method-1",
		},
		{
			name:    "no challenge id is an error",
			payload: map[string]any{"request_id": "request-abc"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := stubServer(t, http.StatusOK, tt.payload)
			challengeID, err := service.SendOtp(context.Background(), "+14155551234", nil)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("SendOtp = %q, want error", challengeID)
				}
				return
			}
			if err != nil {
				t.Fatalf("SendOtp returned error: %v", err)
			}
			if challengeID != tt.want {
				t.Fatalf("challenge id = %q, want %q", challengeID, tt.want)
			}
		})
	}
}

func TestSendOtpRejectedPhone(t *testing.T) {
	service, _ := stubServer(t, http.StatusBadRequest, map[string]any{
		"error_type": "invalid_phone_number",
	})
	_, err := service.SendOtp(context.Background(), "+10000000000", nil)
	if !errors.Is(err, identity.ErrRejected) {
		t.Fatalf("error = %v, want ErrRejected", err)
	}
}

func TestAuthenticateOtpWrongCode(t *testing.T) {
	service, _ := stubServer(t, http.StatusUnauthorized, map[string]any{
		"error_type": "otp_code_not_found",
	})
	_, err := service.AuthenticateOtp(context.Background(), "phone-1", "000000", nil, 60)
	if !errors.Is(err, identity.ErrRejected) {
		t.Fatalf("error = %v, want ErrRejected", err)
	}
}

func TestUnreachableProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(server.Close)

	service := NewServiceWithHost(server.URL, 20*time.Millisecond)
	_, err := service.AuthenticateMagicLink(context.Background(), "some-token", 60)
	if err == nil {
		t.Fatal("timed-out call produced no error")
	}
	if errors.Is(err, identity.ErrRejected) {
		t.Fatal("transport failure was misread as a credential rejection")
	}
}
