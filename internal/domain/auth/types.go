package auth

import (
	"fmt"
	"strings"
	"time"
)

// Role is the single authorization category assigned to an authenticated user.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleFaculty   Role = "Faculty"
	RoleDeveloper Role = "Developer"
	RoleStudent   Role = "Student"
)

// Roles lists every role in resolution precedence order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleFaculty, RoleDeveloper, RoleStudent}
}

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleFaculty, RoleDeveloper, RoleStudent:
		return true
	default:
		return false
	}
}

// Satisfies reports whether a holder of r may access content gated on required.
// Admin satisfies every requirement; any other role satisfies only itself.
func (r Role) Satisfies(required Role) bool {
	if !r.Valid() {
		return false
	}
	return r == required || r == RoleAdmin
}

func (r Role) String() string { return string(r) }

// ParseRole converts a case-insensitive role name into a Role.
func ParseRole(s string) (Role, error) {
	v := strings.TrimSpace(s)
	for _, r := range Roles() {
		if strings.EqualFold(v, string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// UnmarshalText rejects unknown role names when a session is decoded.
// An empty value decodes to the anonymous zero Role.
func (r *Role) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*r = ""
		return nil
	}
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Session is the server-side record behind a session token.
// The zero value is the anonymous state.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Authenticated reports whether the session carries a user and a valid role.
func (s Session) Authenticated() bool {
	return s.ID != "" && s.Username != "" && s.Role.Valid()
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
