package ports

// Package ports defines interfaces (hexagonal ports) for the client core.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/imaginarybank/webcore/internal/domain/auth"
)

// SessionAPI is the BFF's session surface.
type SessionAPI interface {
	// FetchSession returns the current identity. An unauthenticated
	// response is returned as an Unauthenticated error; the session cache
	// maps it (and any other failure) to the anonymous sentinel.
	FetchSession(ctx context.Context) (domainauth.Session, error)

	// Logout terminates the BFF session. Mutating, so CSRF-protected.
	Logout(ctx context.Context) error
}

// BeginInput carries inputs for initiating the admin console login flow.
type BeginInput struct {
	// ReturnPath is the in-app destination to land on after login.
	ReturnPath string
}

// AuthProvider initiates and completes the admin console's federated
// login against the identity provider.
type AuthProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an
	// opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying state and nonce, and
	// returns the authenticated identity.
	Exchange(ctx context.Context, in ExchangeInput) (domainauth.Identity, error)
}

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}
