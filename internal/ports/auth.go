package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"errors"

	domainauth "github.com/miva/mind-dashboard/internal/domain/auth"
)

// ErrSessionNotFound is returned by SessionStore.Get when no live record exists for an id.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists and retrieves user sessions.
// Save writes every field of the session or none of them.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// RoleResolver maps a username to exactly one role. Implementations must be total and pure.
type RoleResolver interface {
	Resolve(username string) domainauth.Role
}

// CredentialVerifier checks a submitted username/password pair.
// It returns domainauth.ErrInvalidCredentials on mismatch.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) error
}
