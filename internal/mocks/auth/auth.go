package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"

	domainauth "github.com/miva/mind-dashboard/internal/domain/auth"
	"github.com/miva/mind-dashboard/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.SessionStore       = (*RecordingSessionStore)(nil)
	_ ports.RoleResolver       = FixedRoleResolver("")
	_ ports.CredentialVerifier = VerifierFunc(nil)
)

// RecordingSessionStore is an in-memory session store that counts writes and can
// be told to fail. It ignores expiry so tests control lifetime explicitly.
type RecordingSessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session

	SaveErr   error
	GetErr    error
	DeleteErr error

	Saves   int
	Deletes int
}

// NewRecordingSessionStore creates an empty store.
func NewRecordingSessionStore() *RecordingSessionStore {
	return &RecordingSessionStore{sessions: make(map[string]domainauth.Session)}
}

func (m *RecordingSessionStore) Save(_ context.Context, sess domainauth.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.Saves++
	m.sessions[sess.ID] = sess
	return nil
}

func (m *RecordingSessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return domainauth.Session{}, m.GetErr
	}
	sess, ok := m.sessions[id]
	if !ok || id == "" {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (m *RecordingSessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if id == "" {
		return nil
	}
	m.Deletes++
	delete(m.sessions, id)
	return nil
}

// Put stores sess directly without counting it as a Save.
func (m *RecordingSessionStore) Put(sess domainauth.Session) {
	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()
}

// Len reports how many sessions are stored.
func (m *RecordingSessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// FixedRoleResolver resolves every username to the same role.
type FixedRoleResolver domainauth.Role

func (f FixedRoleResolver) Resolve(string) domainauth.Role { return domainauth.Role(f) }

// VerifierFunc adapts a function to ports.CredentialVerifier.
type VerifierFunc func(ctx context.Context, username, password string) error

func (f VerifierFunc) Verify(ctx context.Context, username, password string) error {
	return f(ctx, username, password)
}

// AcceptPassword returns a verifier that accepts exactly one password.
func AcceptPassword(secret string) VerifierFunc {
	return func(_ context.Context, _ string, password string) error {
		if password != secret {
			return domainauth.ErrInvalidCredentials
		}
		return nil
	}
}
