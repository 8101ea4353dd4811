// Package identity resolves bearer tokens to user identities against the
// external auth provider.
package identity

import (
	"context"
	"errors"
)

// Identity is the resolved caller.
type Identity struct {
	ID    string
	Email string
}

var (
	// ErrInvalidToken means the token is missing, malformed, expired or rejected
	// by the provider. Maps to 401.
	ErrInvalidToken = errors.New("invalid token")
	// ErrNotConfigured means the server is missing identity-provider
	// credentials. Maps to 500, not 401.
	ErrNotConfigured = errors.New("identity provider not configured")
)

// Verifier resolves a bearer token to an identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// Disabled is a Verifier for processes with no identity configuration. Every
// call reports the misconfiguration.
type Disabled struct{}

func (Disabled) Verify(ctx context.Context, token string) (Identity, error) {
	return Identity{}, ErrNotConfigured
}
