package auth_usecases

import "errors"

// Failure taxonomy surfaced by the orchestrator. Controllers map these onto
// HTTP responses or redirects; raw provider errors never cross this
// boundary.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidPhone         = errors.New("invalid phone number")
	ErrMissingToken         = errors.New("missing magic link token")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrNoActiveChallenge    = errors.New("no active phone challenge")
	ErrInvalidCode          = errors.New("invalid code")
	ErrProviderUnavailable  = errors.New("identity provider unavailable")
)
