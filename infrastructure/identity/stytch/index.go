package stytch

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"valuegate.jvcp.co/infrastructure/identity"
	"valuegate.jvcp.co/infrastructure/logger"
	"valuegate.jvcp.co/infrastructure/network"
)

const (
	liveHost = "https://api.stytch.com"
	testHost = "https://test.stytch.com"
)

// Service talks to the Stytch REST API. It is constructed once at startup
// and injected wherever an identity.Provider is needed; it keeps no global
// state.
type Service struct {
	network    *network.NetworkController
	authHeader string
}

// NewService selects the test or live project host from the environment
// selector. Anything other than "live" stays on the test project.
func NewService(projectID string, secret string, environment string, timeout time.Duration) *Service {
	host := testHost
	if environment == "live" {
		host = liveHost
	}
	service := NewServiceWithHost(host, timeout)
	service.authHeader = "Basic " + base64.StdEncoding.EncodeToString([]byte(projectID+":"+secret))
	return service
}

// NewServiceWithHost points the adapter at an arbitrary host. Used by tests
// to stand in a stub server.
func NewServiceWithHost(host string, timeout time.Duration) *Service {
	return &Service{network: network.NewNetworkController(host, timeout)}
}

func (s *Service) SendMagicLink(ctx context.Context, email string, loginRedirectURL string, signupRedirectURL string) (string, error) {
	response, statusCode, err := s.network.Post(ctx, "/v1/magic_links/email/login_or_create", s.headers(), map[string]any{
		"email":                 email,
		"login_magic_link_url":  loginRedirectURL,
		"signup_magic_link_url": signupRedirectURL,
	})
	if err != nil {
		logger.Error("magic link send did not reach the identity provider", logger.LoggerOptions{
			Key:  "error",
			Data: err.Error(),
		}, logger.LoggerOptions{
			Key:  "email",
			Data: logger.Redact(email),
		})
		return "", fmt.Errorf("identity provider unreachable: %w", err)
	}
	var parsed sendMagicLinkResponse
	if unmarshalErr := json.Unmarshal(*response, &parsed); unmarshalErr != nil {
		return "", fmt.Errorf("identity provider returned a malformed payload: %w", unmarshalErr)
	}
	if flowErr := s.flowError(*statusCode, parsed.ErrorType, parsed.ErrorMessage, "magic link send"); flowErr != nil {
		return "", flowErr
	}
	return parsed.RequestID, nil
}

func (s *Service) AuthenticateMagicLink(ctx context.Context, token string, sessionTTLMinutes int) (*identity.Session, error) {
	response, statusCode, err := s.network.Post(ctx, "/v1/magic_links/authenticate", s.headers(), map[string]any{
		"token":                    token,
		"session_duration_minutes": sessionTTLMinutes,
	})
	if err != nil {
		logger.Error("magic link authentication did not reach the identity provider", logger.LoggerOptions{
			Key:  "error",
			Data: err.Error(),
		})
		return nil, fmt.Errorf("identity provider unreachable: %w", err)
	}
	return s.parseAuthenticated(*response, *statusCode, "magic link authentication")
}

func (s *Service) SendOtp(ctx context.Context, phoneE164 string, existingSessionToken *string) (string, error) {
	body := map[string]any{
		"phone_number":       phoneE164,
		"expiration_minutes": 15,
	}
	if existingSessionToken != nil {
		body["session_token"] = *existingSessionToken
	}
	response, statusCode, err := s.network.Post(ctx, "/v1/otps/sms/login_or_create", s.headers(), body)
	if err != nil {
		logger.Error("otp send did not reach the identity provider", logger.LoggerOptions{
			Key:  "error",
			Data: err.Error(),
		}, logger.LoggerOptions{
			Key:  "phone",
			Data: logger.Redact(phoneE164),
		})
		return "", fmt.Errorf("identity provider unreachable: %w", err)
	}
	var parsed sendOtpResponse
	if unmarshalErr := json.Unmarshal(*response, &parsed); unmarshalErr != nil {
		return "", fmt.Errorf("identity provider returned a malformed payload: %w", unmarshalErr)
	}
	if flowErr := s.flowError(*statusCode, parsed.ErrorType, parsed.ErrorMessage, "otp send"); flowErr != nil {
		return "", flowErr
	}
	// The challenge id field also varies by flow type.
	challengeID := parsed.PhoneID
	if challengeID == "" {
		challengeID = parsed.MethodID
	}
	if challengeID == "" {
		return "", fmt.Errorf("identity provider issued no challenge id")
	}
	return challengeID, nil
}

func (s *Service) AuthenticateOtp(ctx context.Context, challengeID string, code string, existingSessionToken *string, sessionTTLMinutes int) (*identity.Session, error) {
	body := map[string]any{
		"method_id":                challengeID,
		"code":                     code,
		"session_duration_minutes": sessionTTLMinutes,
	}
	if existingSessionToken != nil {
		body["session_token"] = *existingSessionToken
	}
	response, statusCode, err := s.network.Post(ctx, "/v1/otps/authenticate", s.headers(), body)
	if err != nil {
		logger.Error("otp authentication did not reach the identity provider", logger.LoggerOptions{
			Key:  "error",
			Data: err.Error(),
		})
		return nil, fmt.Errorf("identity provider unreachable: %w", err)
	}
	return s.parseAuthenticated(*response, *statusCode, "otp authentication")
}

func (s *Service) headers() map[string]string {
	return map[string]string{"Authorization": s.authHeader}
}

// parseAuthenticated normalizes the two session-bearing response shapes into
// one canonical Session. Downstream code never inspects raw provider fields.
func (s *Service) parseAuthenticated(response []byte, statusCode int, operation string) (*identity.Session, error) {
	var parsed authenticateResponse
	if err := json.Unmarshal(response, &parsed); err != nil {
		return nil, fmt.Errorf("identity provider returned a malformed payload: %w", err)
	}
	if flowErr := s.flowError(statusCode, parsed.ErrorType, parsed.ErrorMessage, operation); flowErr != nil {
		return nil, flowErr
	}
	sessionToken := parsed.SessionToken
	if sessionToken == "" {
		sessionToken = parsed.SessionJWT
	}
	if sessionToken == "" {
		return nil, identity.ErrNoSessionIssued
	}
	return &identity.Session{
		SessionToken: sessionToken,
		SubjectID:    parsed.UserID,
	}, nil
}

// flowError maps provider status codes onto the contract's error split: 4xx
// means the credential was refused, everything else non-2xx means the
// provider itself failed. Error details are logged here and never forwarded
// to clients.
func (s *Service) flowError(statusCode int, errorType string, errorMessage string, operation string) error {
	if statusCode < 400 {
		return nil
	}
	logger.Warning("identity provider returned an error", logger.LoggerOptions{
		Key:  "operation",
		Data: operation,
	}, logger.LoggerOptions{
		Key:  "statusCode",
		Data: statusCode,
	}, logger.LoggerOptions{
		Key:  "errorType",
		Data: errorType,
	}, logger.LoggerOptions{
		Key:  "errorMessage",
		Data: errorMessage,
	})
	if statusCode < 500 {
		return fmt.Errorf("%w: %s", identity.ErrRejected, errorType)
	}
	return fmt.Errorf("identity provider failure during %s", operation)
}
