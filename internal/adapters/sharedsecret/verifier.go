// Package sharedsecret verifies logins against a single configured password.
package sharedsecret

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"

	domainauth "github.com/miva/mind-dashboard/internal/domain/auth"
)

// Verifier implements ports.CredentialVerifier by comparing every password against one shared secret.
// The username plays no part in verification.
type Verifier struct {
	digest [sha256.Size]byte
}

// NewVerifier constructs a Verifier. An empty secret is rejected so that no login can
// succeed by accident.
func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, errors.New("shared secret: secret is required")
	}
	return &Verifier{digest: sha256.Sum256([]byte(secret))}, nil
}

// Verify returns domainauth.ErrInvalidCredentials unless password equals the secret exactly.
func (v *Verifier) Verify(_ context.Context, _ string, password string) error {
	got := sha256.Sum256([]byte(password))
	if subtle.ConstantTimeCompare(got[:], v.digest[:]) != 1 {
		return domainauth.ErrInvalidCredentials
	}
	return nil
}
