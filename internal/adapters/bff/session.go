package bff

import (
	"context"
	"net/http"

	domainauth "github.com/imaginarybank/webcore/internal/domain/auth"
)

const (
	sessionPath = "/api/v1/session"
	logoutPath  = "/bff/session/logout"
)

// sessionResponse is the BFF's current-session payload.
type sessionResponse struct {
	PrincipalID string   `json:"principal_id"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles"`
}

// FetchSession returns the current identity. An unauthenticated backend
// answer comes back as an Unauthenticated error; the session cache is
// responsible for mapping failures to the anonymous sentinel.
func (c *Client) FetchSession(ctx context.Context) (domainauth.Session, error) {
	var out sessionResponse
	if err := c.do(ctx, call{method: http.MethodGet, path: sessionPath, out: &out}); err != nil {
		return domainauth.Anonymous(), err
	}
	return domainauth.Session{
		PrincipalID:   out.PrincipalID,
		Email:         out.Email,
		Roles:         out.Roles,
		Authenticated: true,
	}, nil
}

// Logout terminates the BFF session. The CSRF token rides on the
// pipeline; this call is just the POST.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, call{method: http.MethodPost, path: logoutPath})
}

// tokenResponse is the CSRF token endpoint's payload.
type tokenResponse struct {
	CSRFToken string `json:"csrf_token"`
}

// FetchToken retrieves a fresh CSRF token. Used by the token cache, not
// called directly by application code.
func (c *Client) FetchToken(ctx context.Context) (string, error) {
	var out tokenResponse
	if err := c.do(ctx, call{method: http.MethodGet, path: c.tokenPath, out: &out}); err != nil {
		return "", err
	}
	return out.CSRFToken, nil
}
