// Package session implements the server-side session registry. A
// session is an opaque random token mapped to a username for a fixed
// time-to-live. The mapping only ever lives in a process-local map or
// an external Redis instance; there is no durable persistence, so a
// restart of the backing store revokes every session.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
)

// ErrNoSession is returned by Resolve when the token is unknown or
// past its expiry. Both cases are indistinguishable to the caller.
var ErrNoSession = errors.New("session not found")

// Store is the session registry used by the auth middleware and the
// login/logout handlers. Implementations must enforce the TTL
// themselves on Resolve instead of trusting the cookie max-age the
// client sends back.
type Store interface {
	// Create registers a new session for the username and returns
	// its opaque token.
	Create(ctx context.Context, username string) (string, error)

	// Resolve maps a token back to its username, or ErrNoSession.
	Resolve(ctx context.Context, token string) (string, error)

	// Revoke removes a session. Revoking an absent token is a no-op.
	Revoke(ctx context.Context, token string) error
}

// tokenBytes is the entropy per session token; hex-encoding doubles
// the string length.
const tokenBytes = 32

// newToken returns a cryptographically random, hex-encoded token.
func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
