package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/miva/mind-dashboard/internal/domain/auth"
	"github.com/miva/mind-dashboard/internal/ports"
)

// DefaultSessionTTL is used when AuthServiceConfig.SessionTTL is zero.
const DefaultSessionTTL = 8 * time.Hour

// AuthDeps are the required ports behind AuthService.
type AuthDeps struct {
	Verifier ports.CredentialVerifier
	Sessions ports.SessionStore
	Roles    ports.RoleResolver
}

// AuthServiceConfig tunes session lifetime. Now is overridable for tests.
type AuthServiceConfig struct {
	SessionTTL time.Duration
	Now        func() time.Time
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Deps      AuthDeps
	Config    AuthServiceConfig
	Telemetry Telemetry
}

// AuthService authenticates users against the shared secret, assigns their role,
// and answers the access-guard questions for every gated request.
type AuthService struct {
	verifier ports.CredentialVerifier
	sessions ports.SessionStore
	roles    ports.RoleResolver

	ttl time.Duration
	now func() time.Time
	tel Telemetry
}

// NewAuthService constructs a new AuthService. It panics when a required port is nil.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Deps.Verifier == nil || opts.Deps.Sessions == nil || opts.Deps.Roles == nil {
		panic("service: AuthService requires Verifier, Sessions and Roles")
	}
	ttl := opts.Config.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	now := opts.Config.Now
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		verifier: opts.Deps.Verifier,
		sessions: opts.Deps.Sessions,
		roles:    opts.Deps.Roles,
		ttl:      ttl,
		now:      now,
		tel:      opts.Telemetry,
	}
}

// LoginInput carries a submitted login form.
type LoginInput struct {
	Username string
	Password string
	// PreviousSessionID is the session token the client presented, if any.
	// It is revoked once the new session is stored.
	PreviousSessionID string
}

// LoginResult contains the freshly issued session.
type LoginResult struct {
	Session domainauth.Session
}

// Login verifies the credentials, resolves the role and persists a new session.
//
// A missing field or wrong secret yields domainauth.ErrInvalidCredentials and leaves
// the store untouched. The username is kept exactly as submitted.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	log := s.tel.logger()

	if in.Username == "" || in.Password == "" {
		s.tel.count("auth.login", map[string]string{"result": "invalid"})
		return nil, domainauth.ErrInvalidCredentials
	}

	if err := s.verifier.Verify(ctx, in.Username, in.Password); err != nil {
		if errors.Is(err, domainauth.ErrInvalidCredentials) {
			log.InfoContext(ctx, "login rejected", "username", in.Username)
			s.tel.count("auth.login", map[string]string{"result": "invalid"})
			return nil, domainauth.ErrInvalidCredentials
		}
		s.tel.count("auth.login", map[string]string{"result": "error"})
		return nil, fmt.Errorf("verify credentials: %w", err)
	}

	role := s.roles.Resolve(in.Username)
	now := s.now()
	sess := domainauth.Session{
		ID:        generateSessionID(),
		Username:  in.Username,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		s.tel.count("auth.login", map[string]string{"result": "error"})
		return nil, fmt.Errorf("save session: %w", err)
	}

	if prev := in.PreviousSessionID; prev != "" && prev != sess.ID {
		if err := s.sessions.Delete(ctx, prev); err != nil {
			log.WarnContext(ctx, "failed to revoke previous session", "error", err)
		}
	}

	log.InfoContext(ctx, "login succeeded", "username", in.Username, "role", string(role))
	s.tel.count("auth.login", map[string]string{"result": "success", "role": string(role)})

	return &LoginResult{Session: sess}, nil
}

// RequireLogin returns the authenticated session behind sessionID, or
// domainauth.ErrNotAuthenticated when there is none. Expired records are removed.
func (s *AuthService) RequireLogin(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, domainauth.ErrNotAuthenticated
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return nil, domainauth.ErrNotAuthenticated
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	if sess.Expired(s.now()) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(domainauth.ErrNotAuthenticated, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, domainauth.ErrNotAuthenticated
	}

	if !sess.Authenticated() {
		return nil, domainauth.ErrNotAuthenticated
	}

	return &sess, nil
}

// RequireRole is RequireLogin followed by a role check. A valid session whose role does
// not satisfy required yields *domainauth.InsufficientRoleError.
func (s *AuthService) RequireRole(
	ctx context.Context,
	sessionID string,
	required domainauth.Role,
) (*domainauth.Session, error) {
	sess, err := s.RequireLogin(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.Role.Satisfies(required) {
		s.tel.count("auth.access_denied", map[string]string{
			"required": string(required),
			"actual":   string(sess.Role),
		})
		return nil, &domainauth.InsufficientRoleError{Required: required, Actual: sess.Role}
	}
	return sess, nil
}

// Logout removes a session. Unknown or empty ids are a no-op.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	s.tel.count("auth.logout", nil)
	return nil
}

// SessionTTL reports the lifetime given to new sessions.
func (s *AuthService) SessionTTL() time.Duration { return s.ttl }

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	return uuid.NewString()
}
