package transport

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imaginarybank/webcore/config"
)

func TestChain_Order(t *testing.T) {
	var order []string
	stage := func(name string) Stage {
		return func(next http.RoundTripper) http.RoundTripper {
			return roundTripFunc(func(req *http.Request) (*http.Response, error) {
				order = append(order, name)
				return next.RoundTrip(req)
			})
		}
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	client := &http.Client{Transport: Chain(nil, stage("first"), stage("second"), stage("third"))}
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestChain_NilBaseUsesDefaultTransport(t *testing.T) {
	rt := Chain(nil)
	assert.Equal(t, http.DefaultTransport, rt)
}

func TestNewClient_FullPipeline(t *testing.T) {
	var gotCorrelation, gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCorrelation = r.Header.Get("x-correlation-id")
		gotToken = r.Header.Get("X-CSRF-Token")
	}))
	defer server.Close()

	origin, err := url.Parse(server.URL)
	require.NoError(t, err)
	router, err := NewCookieRouter(origin, []string{"/api/"})
	require.NoError(t, err)

	var cfg config.SecurityConfig
	cfg.CSRFMode = config.CSRFModePreemptive
	cfg.CSRFHeader = "X-CSRF-Token"
	cfg.ProtectedPrefixes = []string{"/api/"}
	cfg.CredentialPrefixes = []string{"/api/"}
	cfg.CorrelationHeader = "x-correlation-id"

	client := NewClient(ClientOptions{
		Origin:   origin,
		Security: cfg,
		Tokens:   &fakeTokens{token: "tok-9"},
		Router:   router,
		Timeout:  5 * time.Second,
	})

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/v1/payments", nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.NotEmpty(t, gotCorrelation)
	assert.Equal(t, "tok-9", gotToken)
	assert.Equal(t, 5*time.Second, client.Timeout)
}

func TestNewClient_NoTokenSourceSkipsCSRFStage(t *testing.T) {
	var gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-CSRF-Token")
	}))
	defer server.Close()

	origin, err := url.Parse(server.URL)
	require.NoError(t, err)

	var cfg config.SecurityConfig
	cfg.CSRFMode = config.CSRFModePreemptive
	cfg.ProtectedPrefixes = []string{"/api/"}

	client := NewClient(ClientOptions{Origin: origin, Security: cfg})

	resp, err := client.Post(server.URL+"/api/v1/session/csrf", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, gotToken)
}
