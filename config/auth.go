package config

// OIDCConfig contains the admin console's OIDC client configuration.
// The cryptographic protocol itself is handled by coreos/go-oidc and
// golang.org/x/oauth2; only the call sequence is ours.
type OIDCConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"imaginarybank-admin"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:""`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:4200/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email groups"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
}

// AuthConfig groups authentication-related configuration.
type AuthConfig struct {
	// OIDC configuration for the admin console's federated login.
	OIDC OIDCConfig `envPrefix:"OIDC_"`

	// AdminGroup is the IdP group granting the admin role.
	AdminGroup string `env:"ADMIN_GROUP" envDefault:"bank-admins"`
}
