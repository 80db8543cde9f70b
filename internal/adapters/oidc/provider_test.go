package oidc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/imaginarybank/webcore/internal/domain/auth"
	"github.com/imaginarybank/webcore/internal/ports"
)

type discoveryDoc struct {
	Issuer                string `json:"issuer"`
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
	UserinfoEndpoint      string `json:"userinfo_endpoint"`
	JwksURI               string `json:"jwks_uri"`
}

func newDiscoveryServer(t *testing.T) *httptest.Server {
	t.Helper()
	var issuer string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(discoveryDoc{
			Issuer:                issuer,
			AuthorizationEndpoint: issuer + "/auth",
			TokenEndpoint:         issuer + "/token",
			UserinfoEndpoint:      issuer + "/userinfo",
			JwksURI:               issuer + "/jwks",
		})
	}))
	t.Cleanup(server.Close)
	issuer = server.URL
	return server
}

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	server := newDiscoveryServer(t)
	provider, err := NewProvider(context.Background(), ProviderConfig{
		ClientID:     "webcore-admin",
		ClientSecret: "secret",
		RedirectURL:  "https://admin.imaginarybank.example/auth/callback",
		Scope:        "openid profile email groups",
		DiscoveryURL: server.URL + "/.well-known/openid-configuration",
		HTTPClient:   server.Client(),
	})
	require.NoError(t, err)
	return provider
}

func TestNewProvider_Discovery(t *testing.T) {
	provider := newTestProvider(t)
	assert.Contains(t, provider.config.Endpoint.AuthURL, "/auth")
	assert.Contains(t, provider.config.Endpoint.TokenURL, "/token")
}

func TestNewProvider_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  ProviderConfig
	}{
		{"missing client ID", ProviderConfig{ClientSecret: "s", RedirectURL: "r", DiscoveryURL: "d"}},
		{"missing client secret", ProviderConfig{ClientID: "c", RedirectURL: "r", DiscoveryURL: "d"}},
		{"missing redirect URL", ProviderConfig{ClientID: "c", ClientSecret: "s", DiscoveryURL: "d"}},
		{"missing discovery URL", ProviderConfig{ClientID: "c", ClientSecret: "s", RedirectURL: "r"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProvider(context.Background(), tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestProvider_Begin(t *testing.T) {
	provider := newTestProvider(t)

	authURL, state, nonce, err := provider.Begin(context.Background(), ports.BeginInput{ReturnPath: "/accounts"})

	require.NoError(t, err)
	assert.Len(t, state, 32)
	assert.Len(t, nonce, 32)
	assert.NotEqual(t, state, nonce)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	q := parsed.Query()
	assert.Equal(t, state, q.Get("state"))
	assert.Equal(t, nonce, q.Get("nonce"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "webcore-admin", q.Get("client_id"))
	assert.Equal(t, "/accounts", q.Get("return_path"))
}

func TestProvider_Begin_StateIsUnpredictable(t *testing.T) {
	provider := newTestProvider(t)

	_, state1, nonce1, err := provider.Begin(context.Background(), ports.BeginInput{})
	require.NoError(t, err)
	_, state2, nonce2, err := provider.Begin(context.Background(), ports.BeginInput{})
	require.NoError(t, err)

	assert.NotEqual(t, state1, state2)
	assert.NotEqual(t, nonce1, nonce2)
}

func TestProvider_Exchange_Validation(t *testing.T) {
	provider := newTestProvider(t)

	_, err := provider.Exchange(context.Background(), ports.ExchangeInput{Nonce: "n"})
	assert.Error(t, err)

	_, err = provider.Exchange(context.Background(), ports.ExchangeInput{Code: "c"})
	assert.Error(t, err)
}

func TestIDTokenClaims_Identity(t *testing.T) {
	claims := idTokenClaims{
		Sub:    "ad|ops-1",
		Email:  "ops@imaginarybank.example",
		Name:   "Back Office",
		Groups: []string{"bank-admins"},
	}

	identity := claims.identity()

	assert.Equal(t, domainauth.Identity{
		PrincipalID: "ad|ops-1",
		Email:       "ops@imaginarybank.example",
		Name:        "Back Office",
		Groups:      []string{"bank-admins"},
	}, identity)
}

func TestRandomToken(t *testing.T) {
	for _, n := range []int{0, 1, 24, 32} {
		s, err := randomToken(n)
		require.NoError(t, err)
		assert.Len(t, s, n)
	}
}
