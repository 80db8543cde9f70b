package transport

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// CookieRouter decides, per outbound request, whether browser-stored
// credentials (cookies) travel with it. Cookies are attached and
// recorded only for the trusted backend origin's configured path
// prefixes; foreign origins (presigned storage URLs) never see them.
//
// The router owns its jar instead of handing it to http.Client, because
// a client-level jar attaches cookies to every destination.
type CookieRouter struct {
	origin   *url.URL
	prefixes []string
	jar      http.CookieJar
}

// NewCookieRouter builds a router for the given backend origin. The jar
// uses the embedded public suffix list so domain cookies cannot be set
// for an eTLD.
func NewCookieRouter(origin *url.URL, prefixes []string) (*CookieRouter, error) {
	if origin == nil || origin.Host == "" {
		return nil, fmt.Errorf("cookie router: backend origin is required")
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookie router: %w", err)
	}
	return &CookieRouter{origin: origin, prefixes: prefixes, jar: jar}, nil
}

// Allows reports whether credentials may travel to the given destination.
func (c *CookieRouter) Allows(u *url.URL) bool {
	if u == nil {
		return false
	}
	if !sameOrigin(c.origin, u) {
		return false
	}
	return hasPrefix(u.Path, c.prefixes)
}

// SetCookies seeds the jar, e.g. from a completed login callback.
func (c *CookieRouter) SetCookies(u *url.URL, cookies []*http.Cookie) {
	c.jar.SetCookies(u, cookies)
}

// Cookies exposes the jar's cookies for a URL, mainly for tests.
func (c *CookieRouter) Cookies(u *url.URL) []*http.Cookie {
	return c.jar.Cookies(u)
}

// Stage returns the pipeline stage backed by this router.
func (c *CookieRouter) Stage() Stage {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripFunc(func(req *http.Request) (*http.Response, error) {
			if !c.Allows(req.URL) {
				return next.RoundTrip(req)
			}

			routed := req.Clone(req.Context())
			for _, cookie := range c.jar.Cookies(req.URL) {
				routed.AddCookie(cookie)
			}

			resp, err := next.RoundTrip(routed)
			if err != nil {
				return nil, err
			}
			if set := resp.Cookies(); len(set) > 0 {
				c.jar.SetCookies(req.URL, set)
			}
			return resp, nil
		})
	}
}

// sameOrigin compares scheme and host (including port).
func sameOrigin(a, b *url.URL) bool {
	if a == nil || b == nil {
		return false
	}
	return strings.EqualFold(a.Scheme, b.Scheme) && strings.EqualFold(a.Host, b.Host)
}

func hasPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
