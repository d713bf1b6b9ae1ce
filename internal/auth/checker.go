package auth

import "context"

var _ Checker = (*SessionStore)(nil)

// Checker resolves a session token into the signed in user's session.
type Checker interface {
	Resolve(ctx context.Context, token string) (*Session, error)
}
