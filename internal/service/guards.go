package service

import (
	"context"
	"net/url"
)

// Decision is a guard's verdict for one navigation attempt. When the
// navigation is denied, RedirectTo carries the route to go instead.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// GuardOptions groups dependencies for the route guards.
type GuardOptions struct {
	Sessions *SessionCache
	// LoginPath is the login entry route, e.g. "/login".
	LoginPath string
	// LandingPath is the authenticated landing route, e.g. "/home".
	LandingPath string
}

// Guard gates navigation on the cached session. Both variants tolerate
// the anonymous sentinel; absence of a session is a redirect, never an
// error.
type Guard struct {
	sessions    *SessionCache
	loginPath   string
	landingPath string
}

// NewGuard constructs a Guard.
func NewGuard(opts GuardOptions) *Guard {
	loginPath := opts.LoginPath
	if loginPath == "" {
		loginPath = "/login"
	}
	landingPath := opts.LandingPath
	if landingPath == "" {
		landingPath = "/home"
	}
	return &Guard{sessions: opts.Sessions, loginPath: loginPath, landingPath: landingPath}
}

// RequireAuthenticated allows the navigation when a session is present.
// Otherwise it redirects to the login entry, preserving the requested
// destination for post-login return.
func (g *Guard) RequireAuthenticated(ctx context.Context, destination string) Decision {
	sess := g.sessions.Get(ctx)
	if !sess.IsAnonymous() {
		return Decision{Allowed: true}
	}
	q := url.Values{"redirect": {destination}}
	return Decision{RedirectTo: g.loginPath + "?" + q.Encode()}
}

// RequireAnonymous allows the navigation only when no session is
// present. A logged-in user is sent to the landing route regardless of
// the requested destination.
func (g *Guard) RequireAnonymous(ctx context.Context, _ string) Decision {
	sess := g.sessions.Get(ctx)
	if sess.IsAnonymous() {
		return Decision{Allowed: true}
	}
	return Decision{RedirectTo: g.landingPath}
}
