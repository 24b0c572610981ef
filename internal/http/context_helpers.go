package httpx

import (
	"context"
	"time"

	domainauth "github.com/dojoworks/dojo-admin/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across packages.
type sessionKey struct{}

type sessionClockKey struct{}

// SessionClock is the idle deadline of the current session as shown by the countdown.
type SessionClock struct {
	Deadline time.Time
	Warning  time.Duration
}

// SetSessionInContext returns a child context that carries the given session.
// If session is nil, the original ctx is returned unchanged.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetUserSessionFromContext returns the user session from context and a boolean indicating presence.
func GetUserSessionFromContext(ctx context.Context) (*domainauth.Session, bool) {
	if session, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok && session != nil {
		return session, true
	}
	return nil, false
}

// GetSessionFromContext retrieves the session from the request context.
func GetSessionFromContext(ctx context.Context) *domainauth.Session {
	if s, ok := GetUserSessionFromContext(ctx); ok {
		return s
	}
	return nil
}

// IsGuestUser reports whether the current request context is unauthenticated or a guest session.
func IsGuestUser(ctx context.Context) bool {
	s, ok := GetUserSessionFromContext(ctx)
	if !ok || s == nil {
		return true
	}
	return s.IsGuest()
}

// CanFromContext reports whether the session on ctx holds permission p.
func CanFromContext(ctx context.Context, p domainauth.Permission) bool {
	s, ok := GetUserSessionFromContext(ctx)
	return ok && s.Can(p)
}

func setSessionClock(ctx context.Context, clock SessionClock) context.Context {
	return context.WithValue(ctx, sessionClockKey{}, clock)
}

// SessionClockFromContext returns the idle clock set by the auth middleware.
func SessionClockFromContext(ctx context.Context) (SessionClock, bool) {
	clock, ok := ctx.Value(sessionClockKey{}).(SessionClock)
	return clock, ok
}
