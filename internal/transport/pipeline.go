// Package transport implements the outbound request pipeline shared by
// both browser products: an explicit, ordered chain of RoundTripper
// stages (correlation tagging → credential routing → CSRF attachment)
// in front of the real network transport.
package transport

import (
	"net/http"
	"net/url"
	"time"

	"github.com/imaginarybank/webcore/config"
	"github.com/imaginarybank/webcore/internal/observability/statsd"
)

// Stage is one layer of the outbound pipeline. A stage receives the next
// transport and returns a wrapped one. Stages must treat the request as
// read-only and clone before modifying, per the RoundTripper contract.
type Stage func(http.RoundTripper) http.RoundTripper

// roundTripFunc adapts a function to http.RoundTripper.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Chain composes stages around a base transport. The first stage listed
// sees the request first on the way out.
func Chain(base http.RoundTripper, stages ...Stage) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	rt := base
	for i := len(stages) - 1; i >= 0; i-- {
		rt = stages[i](rt)
	}
	return rt
}

// ClientOptions bundles dependencies for NewClient.
type ClientOptions struct {
	// Origin is the trusted backend origin. Requests elsewhere bypass
	// credential and CSRF handling entirely.
	Origin *url.URL

	// Security carries header names and path prefix sets.
	Security config.SecurityConfig

	// Tokens supplies CSRF tokens; nil disables the CSRF stage (used for
	// the bootstrap client the token fetcher itself runs on).
	Tokens TokenSource

	// Router is the shared cookie router. Both the bootstrap client and
	// the full client must use the same instance so cookies observed by
	// one are visible to the other.
	Router *CookieRouter

	// Metrics is the StatsD sink for request metrics; nil disables emission.
	Metrics statsd.Sink

	// Timeout bounds each request; zero leaves the client unbounded.
	Timeout time.Duration

	// Base is the innermost transport; nil means http.DefaultTransport.
	Base http.RoundTripper
}

// NewClient builds an http.Client whose transport runs the full pipeline:
// correlation tag → request metrics → credential routing → CSRF policy.
func NewClient(opts ClientOptions) *http.Client {
	stages := []Stage{
		Correlation(opts.Security.CorrelationHeader),
	}
	if opts.Metrics != nil {
		stages = append(stages, Metrics(opts.Metrics))
	}
	if opts.Router != nil {
		stages = append(stages, opts.Router.Stage())
	}
	if opts.Tokens != nil {
		stages = append(stages, CSRF(CSRFOptions{
			Mode:              opts.Security.CSRFMode,
			Header:            opts.Security.CSRFHeader,
			Origin:            opts.Origin,
			ProtectedPrefixes: opts.Security.ProtectedPrefixes,
			Tokens:            opts.Tokens,
			Metrics:           opts.Metrics,
		}))
	}

	return &http.Client{
		Transport: Chain(opts.Base, stages...),
		Timeout:   opts.Timeout,
	}
}
