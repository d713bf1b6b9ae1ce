package auth

import "context"

type sessionCtxKey struct{}

// WithSession returns a copy of ctx carrying the request's session.
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, session)
}

// SessionFrom returns the session stored by WithSession, if any.
func SessionFrom(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionCtxKey{}).(*Session)
	return session, ok && session != nil
}
