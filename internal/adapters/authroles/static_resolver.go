package authroles

import (
	"fmt"
	"sort"
	"strings"

	domainauth "github.com/miva/mind-dashboard/internal/domain/auth"
)

// Membership lists the usernames configured for each privileged role.
// Anyone not listed resolves to Student.
type Membership struct {
	Admins     []string
	Faculty    []string
	Developers []string
}

// Options tunes resolver construction.
type Options struct {
	// RejectOverlap fails construction when a username appears under more than one role.
	RejectOverlap bool
}

// OverlapError names usernames that were configured under more than one role.
type OverlapError struct {
	// Usernames maps each overlapping username to the roles it was listed under.
	Usernames map[string][]domainauth.Role
}

func (e *OverlapError) Error() string {
	names := make([]string, 0, len(e.Usernames))
	for u := range e.Usernames {
		names = append(names, u)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, u := range names {
		roles := make([]string, 0, len(e.Usernames[u]))
		for _, r := range e.Usernames[u] {
			roles = append(roles, string(r))
		}
		parts = append(parts, u+" ("+strings.Join(roles, ", ")+")")
	}
	return "usernames listed under more than one role: " + strings.Join(parts, "; ")
}

// StaticRoleResolver resolves roles from fixed membership sets. It is read-only after
// construction and safe for concurrent use.
type StaticRoleResolver struct {
	admins     map[string]struct{}
	faculty    map[string]struct{}
	developers map[string]struct{}
}

// NewStaticRoleResolver builds a resolver from m.
func NewStaticRoleResolver(m Membership, opts Options) (*StaticRoleResolver, error) {
	r := &StaticRoleResolver{
		admins:     toSet(m.Admins),
		faculty:    toSet(m.Faculty),
		developers: toSet(m.Developers),
	}
	if opts.RejectOverlap {
		if overlaps := r.overlaps(); len(overlaps) > 0 {
			return nil, &OverlapError{Usernames: overlaps}
		}
	}
	return r, nil
}

// Resolve returns the role for username. Matching ignores case and surrounding
// whitespace; precedence is Admin, Faculty, Developer, then Student.
func (r *StaticRoleResolver) Resolve(username string) domainauth.Role {
	u := NormalizeUsername(username)
	if _, ok := r.admins[u]; ok {
		return domainauth.RoleAdmin
	}
	if _, ok := r.faculty[u]; ok {
		return domainauth.RoleFaculty
	}
	if _, ok := r.developers[u]; ok {
		return domainauth.RoleDeveloper
	}
	return domainauth.RoleStudent
}

// NormalizeUsername trims and lower-cases a username for membership comparison.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func (r *StaticRoleResolver) overlaps() map[string][]domainauth.Role {
	counts := make(map[string][]domainauth.Role)
	add := func(set map[string]struct{}, role domainauth.Role) {
		for u := range set {
			counts[u] = append(counts[u], role)
		}
	}
	add(r.admins, domainauth.RoleAdmin)
	add(r.faculty, domainauth.RoleFaculty)
	add(r.developers, domainauth.RoleDeveloper)

	out := make(map[string][]domainauth.Role)
	for u, roles := range counts {
		if len(roles) > 1 {
			out[u] = roles
		}
	}
	return out
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		if v := NormalizeUsername(n); v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

// String summarizes list sizes for startup logs without exposing usernames.
func (r *StaticRoleResolver) String() string {
	return fmt.Sprintf("admins=%d faculty=%d developers=%d", len(r.admins), len(r.faculty), len(r.developers))
}
