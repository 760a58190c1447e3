package identity

import (
	"context"
	"errors"
)

// Session is the canonical result of a successful provider authentication.
// Provider responses differ in which field carries the session token
// depending on flow type; the adapter resolves that ambiguity once, before a
// Session is ever constructed.
type Session struct {
	SessionToken string
	SubjectID    string
}

// ErrRejected reports that the provider understood the request and refused
// the credential: unknown or replayed magic-link token, wrong or expired
// one-time code.
var ErrRejected = errors.New("identity provider rejected the credential")

// ErrNoSessionIssued reports a provider success response that carried no
// usable session token in any of the known fields.
var ErrNoSessionIssued = errors.New("identity provider issued no usable session token")

// Provider is the behavioral contract of the external identity service. All
// calls are blocking network operations with a bounded timeout; a timeout
// surfaces as an error, never as a hang.
type Provider interface {
	// SendMagicLink asks the provider to email a single-use login link.
	// Both redirect URLs point at the link-consumption endpoint; the
	// provider picks one depending on whether the email is a new signup.
	SendMagicLink(ctx context.Context, email string, loginRedirectURL string, signupRedirectURL string) (string, error)

	// AuthenticateMagicLink exchanges an emailed token for a primary
	// session with the given absolute lifetime.
	AuthenticateMagicLink(ctx context.Context, token string, sessionTTLMinutes int) (*Session, error)

	// SendOtp texts a one-time code to the phone number and returns the
	// opaque challenge id the code must later be verified against. When an
	// existing session token is supplied the challenge is bound to that
	// identity instead of creating a detached one.
	SendOtp(ctx context.Context, phoneE164 string, existingSessionToken *string) (string, error)

	// AuthenticateOtp verifies a code against a pending challenge. With an
	// existing session token the resulting session supersedes it rather
	// than replacing the identity.
	AuthenticateOtp(ctx context.Context, challengeID string, code string, existingSessionToken *string, sessionTTLMinutes int) (*Session, error)
}
