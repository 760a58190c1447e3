package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidCredential is returned for every verification failure. Callers
// cannot tell a tampered credential from an expired one.
var ErrInvalidCredential = errors.New("invalid step-up credential")

// StepUpClaims is the verified content of a step-up credential.
type StepUpClaims struct {
	SubjectID             string
	SecondFactorSatisfied bool
}

type stepUpTokenClaims struct {
	SecondFactor bool `json:"sfa"`
	jwt.RegisteredClaims
}

// Signer issues and verifies the step-up credential: a compact HS256 token
// carrying the subject, a second-factor claim and an absolute expiry. The
// signing key is process-wide configuration loaded once at startup; rotating
// it is a config swap and restart, which invalidates every outstanding
// credential at once.
type Signer struct {
	signingKey []byte
	issuer     string
}

func NewSigner(signingKey string, issuer string) (*Signer, error) {
	if signingKey == "" {
		return nil, errors.New("step-up signing key is not configured")
	}
	if issuer == "" {
		issuer = "valuegate"
	}
	return &Signer{
		signingKey: []byte(signingKey),
		issuer:     issuer,
	}, nil
}

// Issue mints a credential asserting that subjectID has (or has not)
// satisfied the second factor, valid until now+ttl.
func (s *Signer) Issue(subjectID string, secondFactorSatisfied bool, ttl time.Duration) (string, error) {
	now := jwt.TimeFunc()
	claims := stepUpTokenClaims{
		SecondFactor: secondFactorSatisfied,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
}

// Verify checks signature, issuer and expiry together. The credential is
// self-contained; no call leaves the process.
func (s *Signer) Verify(credential string) (*StepUpClaims, error) {
	parsed, err := jwt.ParseWithClaims(credential, &stepUpTokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.signingKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidCredential
	}
	claims, ok := parsed.Claims.(*stepUpTokenClaims)
	if !ok || claims.Issuer != s.issuer || claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, ErrInvalidCredential
	}
	return &StepUpClaims{
		SubjectID:             claims.Subject,
		SecondFactorSatisfied: claims.SecondFactor,
	}, nil
}
