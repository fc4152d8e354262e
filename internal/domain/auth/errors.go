package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned when a login is missing a field or the secret does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotAuthenticated is returned when no authenticated session backs the request.
	ErrNotAuthenticated = errors.New("you must log in to access this page")
	// ErrInsufficientRole matches any *InsufficientRoleError via errors.Is.
	ErrInsufficientRole = errors.New("insufficient role")
)

// InsufficientRoleError reports an authenticated user whose role does not satisfy a page requirement.
type InsufficientRoleError struct {
	Required Role
	Actual   Role
}

func (e *InsufficientRoleError) Error() string {
	return fmt.Sprintf("access denied: only %s or %s users can view this page, your role is %s",
		e.Required, RoleAdmin, e.Actual)
}

// Is lets errors.Is(err, ErrInsufficientRole) match.
func (e *InsufficientRoleError) Is(target error) bool {
	return target == ErrInsufficientRole
}
