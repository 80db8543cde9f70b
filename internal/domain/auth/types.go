package auth

// Package auth contains domain-level types for the browser session identity.
// It is pure and free of transport/adapter concerns.

// Role represents an application's authorization role.
// Keep string form for easy serialization into claims.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
	RoleGuest    Role = "guest"
)

// Session is the client-held snapshot of the authenticated identity
// returned by the BFF session endpoint. Consumers receive copies;
// the session cache owns the canonical value.
type Session struct {
	PrincipalID   string   `json:"principal_id"`
	Email         string   `json:"email"`
	Roles         []string `json:"roles"`
	Authenticated bool     `json:"authenticated"`
}

// Anonymous is the sentinel for "no session". A failed or
// unauthenticated session fetch resolves to this value rather
// than an error.
func Anonymous() Session {
	return Session{Authenticated: false}
}

// IsAnonymous returns true when the session carries no authenticated principal.
func (s Session) IsAnonymous() bool { return !s.Authenticated }

// HasRole returns true if the session includes the given role.
func (s Session) HasRole(role Role) bool {
	for _, r := range s.Roles {
		if Role(r) == role {
			return true
		}
	}
	return false
}

// Identity represents the authenticated principal returned by the IdP
// during the admin console login flow. The OIDC adapter maps
// provider-specific claims into this shape.
type Identity struct {
	PrincipalID string
	Email       string
	Name        string
	Groups      []string
}
