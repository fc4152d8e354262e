package httpx

import (
	"context"

	domainauth "github.com/miva/mind-dashboard/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across packages.
type sessionKey struct{}

// SetSessionInContext returns a child context that carries the given session.
// If session is nil, the original ctx is returned unchanged.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the session placed there by the access guard.
func SessionFromContext(ctx context.Context) (*domainauth.Session, bool) {
	if session, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok && session != nil {
		return session, true
	}
	return nil, false
}

// routeKey carries a pointer the router fills in with the matched pattern,
// so middleware outside the mux can tag metrics by route.
type routeKey struct{}

type routeInfo struct {
	pattern string
}

func withRouteInfo(ctx context.Context) (context.Context, *routeInfo) {
	info := &routeInfo{}
	return context.WithValue(ctx, routeKey{}, info), info
}

func routeInfoFromContext(ctx context.Context) *routeInfo {
	info, _ := ctx.Value(routeKey{}).(*routeInfo)
	return info
}
