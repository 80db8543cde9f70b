package transport

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestNewCookieRouter_RequiresOrigin(t *testing.T) {
	_, err := NewCookieRouter(nil, nil)
	require.Error(t, err)
}

func TestCookieRouter_Allows(t *testing.T) {
	origin := mustParse(t, "https://app.example.com")
	router, err := NewCookieRouter(origin, []string{"/api/", "/bff/"})
	require.NoError(t, err)

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"api path", "https://app.example.com/api/v1/session", true},
		{"bff path", "https://app.example.com/bff/session/logout", true},
		{"unprotected path", "https://app.example.com/assets/logo.svg", false},
		{"foreign origin", "https://kyc-uploads.s3.amazonaws.com/api/v1/x", false},
		{"scheme mismatch", "http://app.example.com/api/v1/session", false},
		{"port mismatch", "https://app.example.com:8443/api/v1/session", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, router.Allows(mustParse(t, tt.url)))
		})
	}
}

func TestCookieRouter_AttachesAndRecordsCookies(t *testing.T) {
	var gotCookie string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/login":
			http.SetCookie(w, &http.Cookie{Name: "bff_session", Value: "s-1", Path: "/"})
		case "/api/v1/session":
			if c, err := r.Cookie("bff_session"); err == nil {
				gotCookie = c.Value
			}
		}
	}))
	defer server.Close()

	origin := mustParse(t, server.URL)
	router, err := NewCookieRouter(origin, []string{"/api/"})
	require.NoError(t, err)

	client := &http.Client{Transport: Chain(nil, router.Stage())}

	resp, err := client.Get(server.URL + "/api/v1/login")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = client.Get(server.URL + "/api/v1/session")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "s-1", gotCookie)
}

func TestCookieRouter_NeverSendsCookiesCrossOrigin(t *testing.T) {
	var sawCookieHeader bool
	foreign := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawCookieHeader = r.Header.Get("Cookie") != ""
	}))
	defer foreign.Close()

	// Router is scoped to a different origin than the server we call.
	origin := mustParse(t, "https://app.example.com")
	router, err := NewCookieRouter(origin, []string{"/"})
	require.NoError(t, err)

	router.SetCookies(origin, []*http.Cookie{{Name: "bff_session", Value: "secret", Path: "/"}})

	client := &http.Client{Transport: Chain(nil, router.Stage())}
	resp, err := client.Get(foreign.URL + "/upload")
	require.NoError(t, err)
	resp.Body.Close()

	assert.False(t, sawCookieHeader, "credentials leaked to a foreign origin")
}

func TestCookieRouter_SkipsUnmatchedPrefix(t *testing.T) {
	var sawCookieHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawCookieHeader = r.Header.Get("Cookie") != ""
	}))
	defer server.Close()

	origin := mustParse(t, server.URL)
	router, err := NewCookieRouter(origin, []string{"/api/"})
	require.NoError(t, err)
	router.SetCookies(origin, []*http.Cookie{{Name: "bff_session", Value: "secret", Path: "/"}})

	client := &http.Client{Transport: Chain(nil, router.Stage())}
	resp, err := client.Get(server.URL + "/assets/app.js")
	require.NoError(t, err)
	resp.Body.Close()

	assert.False(t, sawCookieHeader)
}
