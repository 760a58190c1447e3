package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func newTestSigner(t *testing.T, key string) *Signer {
	t.Helper()
	signer, err := NewSigner(key, "valuegate-test")
	if err != nil {
		t.Fatalf("NewSigner returned error: %v", err)
	}
	return signer
}

// withClock pins the time the jwt library uses for issuance and expiry
// checks, restoring the real clock when the test ends.
func withClock(t *testing.T, now time.Time) {
	t.Helper()
	jwt.TimeFunc = func() time.Time { return now }
	t.Cleanup(func() { jwt.TimeFunc = time.Now })
}

func TestNewSignerRequiresKey(t *testing.T) {
	if _, err := NewSigner("", "valuegate-test"); err == nil {
		t.Fatal("NewSigner accepted an empty signing key")
	}
}

func TestIssueVerifyRoundtrip(t *testing.T) {
	signer := newTestSigner(t, "s1")
	credential, err := signer.Issue("user-1", true, time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	claims, err := signer.Verify(credential)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.SubjectID != "user-1" {
		t.Fatalf("SubjectID = %q, want %q", claims.SubjectID, "user-1")
	}
	if !claims.SecondFactorSatisfied {
		t.Fatal("SecondFactorSatisfied = false, want true")
	}
}

func TestVerifyPreservesUnsatisfiedSecondFactor(t *testing.T) {
	signer := newTestSigner(t, "s1")
	credential, err := signer.Issue("user-1", false, time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	claims, err := signer.Verify(credential)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.SecondFactorSatisfied {
		t.Fatal("SecondFactorSatisfied = true, want false")
	}
}

func TestVerifyRejectsOtherSecret(t *testing.T) {
	issued, err := newTestSigner(t, "s1").Issue("user-1", true, time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := newTestSigner(t, "s2").Verify(issued); !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("Verify with rotated secret returned %v, want ErrInvalidCredential", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	signer := newTestSigner(t, "s1")
	for _, credential := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := signer.Verify(credential); !errors.Is(err, ErrInvalidCredential) {
			t.Fatalf("Verify(%q) returned %v, want ErrInvalidCredential", credential, err)
		}
	}
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	signer := newTestSigner(t, "s1")
	credential, err := signer.Issue("user-1", true, time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := signer.Verify(credential + "x"); !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("Verify of tampered credential returned %v, want ErrInvalidCredential", err)
	}
}

func TestVerifyRejectsForeignIssuer(t *testing.T) {
	foreign, err := NewSigner("s1", "someone-else")
	if err != nil {
		t.Fatalf("NewSigner returned error: %v", err)
	}
	credential, err := foreign.Issue("user-1", true, time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := newTestSigner(t, "s1").Verify(credential); !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("Verify of foreign-issuer credential returned %v, want ErrInvalidCredential", err)
	}
}

func TestVerifyExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	withClock(t, issuedAt)

	signer := newTestSigner(t, "s1")
	credential, err := signer.Issue("user-1", true, 3600*time.Second)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	jwt.TimeFunc = func() time.Time { return issuedAt.Add(3599 * time.Second) }
	if _, err := signer.Verify(credential); err != nil {
		t.Fatalf("Verify at ttl-1s returned %v, want valid", err)
	}

	jwt.TimeFunc = func() time.Time { return issuedAt.Add(3601 * time.Second) }
	if _, err := signer.Verify(credential); !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("Verify at ttl+1s returned %v, want ErrInvalidCredential", err)
	}
}
