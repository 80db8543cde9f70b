package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	domainauth "github.com/imaginarybank/webcore/internal/domain/auth"
	"github.com/imaginarybank/webcore/internal/ports"
)

// tokenClearer is the slice of the CSRF token cache the auth flow
// needs: dropping the cached token on logout.
type tokenClearer interface {
	Clear()
}

// AuthFlowOptions groups dependencies for AuthFlow.
type AuthFlowOptions struct {
	API      ports.SessionAPI
	Provider ports.AuthProvider
	Caches   AuthFlowCaches
	Config   AuthFlowConfig
	Logger   *slog.Logger
}

// AuthFlowCaches groups the two caches the flow must reset.
type AuthFlowCaches struct {
	Sessions *SessionCache
	Tokens   tokenClearer
}

// AuthFlowConfig holds the app routes the flow builds URLs from.
type AuthFlowConfig struct {
	// LoginStartPath is the BFF endpoint that starts the hosted login
	// redirect, e.g. "/api/v1/auth/oidc/start".
	LoginStartPath string
}

// AuthFlow orchestrates login entry, the admin console's federated
// exchange, and logout.
type AuthFlow struct {
	api      ports.SessionAPI
	provider ports.AuthProvider
	sessions *SessionCache
	tokens   tokenClearer
	config   AuthFlowConfig
	logger   *slog.Logger
}

// NewAuthFlow constructs an AuthFlow. Provider may be nil for the
// customer app, which only uses the hosted login redirect.
func NewAuthFlow(opts AuthFlowOptions) *AuthFlow {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	config := opts.Config
	if config.LoginStartPath == "" {
		config.LoginStartPath = "/api/v1/auth/oidc/start"
	}
	return &AuthFlow{
		api:      opts.API,
		provider: opts.Provider,
		sessions: opts.Caches.Sessions,
		tokens:   opts.Caches.Tokens,
		config:   config,
		logger:   logger,
	}
}

// LoginURL returns the navigation target that starts the hosted login
// flow, carrying the post-login destination as a redirect parameter.
func (f *AuthFlow) LoginURL(returnPath string) string {
	if returnPath == "" {
		return f.config.LoginStartPath
	}
	q := url.Values{"redirect": {returnPath}}
	return f.config.LoginStartPath + "?" + q.Encode()
}

// BeginLoginResult carries the provider auth URL plus the state and
// nonce the caller must hold for the exchange.
type BeginLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginLogin starts the admin console's federated login.
func (f *AuthFlow) BeginLogin(ctx context.Context, returnPath string) (*BeginLoginResult, error) {
	if f.provider == nil {
		return nil, errors.New("auth flow: no identity provider configured")
	}
	authURL, state, nonce, err := f.provider.Begin(ctx, ports.BeginInput{ReturnPath: returnPath})
	if err != nil {
		return nil, fmt.Errorf("begin login: %w", err)
	}
	return &BeginLoginResult{AuthURL: authURL, State: state, Nonce: nonce}, nil
}

// CompleteLogin exchanges the authorization code and invalidates the
// session cache so the next read sees the new identity.
func (f *AuthFlow) CompleteLogin(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, error) {
	if f.provider == nil {
		return domainauth.Identity{}, errors.New("auth flow: no identity provider configured")
	}
	identity, err := f.provider.Exchange(ctx, in)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("complete login: %w", err)
	}

	f.sessions.Invalidate()
	f.logger.InfoContext(ctx, "login completed", "principal_id", identity.PrincipalID)
	return identity, nil
}

// Logout terminates the BFF session, then clears the session and CSRF
// caches. Both caches are cleared even when the network call fails so
// the client never keeps acting on a session the user asked to end.
func (f *AuthFlow) Logout(ctx context.Context) error {
	err := f.api.Logout(ctx)

	f.sessions.Invalidate()
	if f.tokens != nil {
		f.tokens.Clear()
	}

	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	f.logger.InfoContext(ctx, "logout completed")
	return nil
}
