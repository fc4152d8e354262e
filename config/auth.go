package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// UserList is a comma-separated list of usernames. Entries are trimmed and
// lower-cased on load; empty entries are dropped.
type UserList []string

// UnmarshalText implements encoding.TextUnmarshaler for UserList.
func (u *UserList) UnmarshalText(text []byte) error {
	parts := strings.Split(string(text), ",")
	out := make(UserList, 0, len(parts))
	for _, p := range parts {
		if v := strings.ToLower(strings.TrimSpace(p)); v != "" {
			out = append(out, v)
		}
	}
	*u = out
	return nil
}

// SessionStoreKind selects the session backend.
type SessionStoreKind string

const (
	// SessionStoreRedis keeps sessions in Redis with a TTL.
	SessionStoreRedis SessionStoreKind = "redis"
	// SessionStoreMemory keeps sessions in process memory (development only).
	SessionStoreMemory SessionStoreKind = "memory"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionStoreKind.
func (s *SessionStoreKind) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "redis", "memory":
		*s = SessionStoreKind(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionStoreKind: %q (valid options: redis, memory)", v)
	}
}

// OverlapPolicy decides what happens when a username appears in more than one role list.
type OverlapPolicy string

const (
	// OverlapFirstMatch resolves overlaps by precedence: Admin, then Faculty, then Developer.
	OverlapFirstMatch OverlapPolicy = "first-match"
	// OverlapReject refuses to start when any username is listed under two roles.
	OverlapReject OverlapPolicy = "reject"
)

// UnmarshalText implements encoding.TextUnmarshaler for OverlapPolicy.
func (p *OverlapPolicy) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "first-match", "reject":
		*p = OverlapPolicy(v)
		return nil
	default:
		return fmt.Errorf("invalid OverlapPolicy: %q (valid options: first-match, reject)", v)
	}
}

// AuthConfig groups all authentication-related configuration.
//
// The three role lists and the login secret must be present; an empty list is
// allowed, an absent key is not.
type AuthConfig struct {
	AdminUsers     UserList `env:"ADMIN_USERS,required"`
	FacultyUsers   UserList `env:"FACULTY_USERS,required"`
	DeveloperUsers UserList `env:"DEVELOPER_USERS,required"`

	// LoginSecret is the shared password every user logs in with.
	// It is removed from the process environment once read.
	LoginSecret string `env:"LOGIN_SECRET,required,unset"`

	// SessionTTL bounds how long a session survives without a fresh login.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"8h"`

	SessionStore      SessionStoreKind `env:"SESSION_STORE"       envDefault:"redis"`
	RoleOverlapPolicy OverlapPolicy    `env:"ROLE_OVERLAP_POLICY" envDefault:"first-match"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = 8 * time.Hour
	}
	if a.SessionStore == "" {
		a.SessionStore = SessionStoreRedis
	}
	if a.RoleOverlapPolicy == "" {
		a.RoleOverlapPolicy = OverlapFirstMatch
	}
}

// Validate rejects a login secret that is present but empty.
// Whitespace is a legal secret and is compared verbatim.
func (a *AuthConfig) Validate() error {
	if a.LoginSecret == "" {
		return errors.New("LOGIN_SECRET must not be empty")
	}
	return nil
}
