package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/imaginarybank/webcore/config"
	"github.com/imaginarybank/webcore/internal/observability/statsd"
)

// TokenSource supplies the CSRF token attached to protected requests.
// Implementations cache and coalesce fetches; Clear drops the cached
// token so the next Token call fetches a fresh one.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Clear()
}

// CSRFOptions configures the CSRF attachment stage.
type CSRFOptions struct {
	// Mode selects optimistic (send bare, replay once on 403) or
	// preemptive (attach the cached token up front) behavior.
	Mode config.CSRFMode

	// Header is the request header the token travels on.
	Header string

	// Origin is the trusted backend origin; cross-origin requests are
	// always exempt regardless of method.
	Origin *url.URL

	// ProtectedPrefixes are the path prefixes whose mutating requests
	// require a token.
	ProtectedPrefixes []string

	// Tokens supplies and invalidates tokens.
	Tokens TokenSource

	// Metrics counts replays; nil disables emission.
	Metrics statsd.Sink
}

// CSRF returns the token attachment stage. The replay protocol is the
// same in both modes: a 403 triggers exactly one token refresh and one
// replay; a second 403 invalidates the cached token and is returned to
// the caller as terminal. A request that already carries the token
// header is passed through untouched.
func CSRF(opts CSRFOptions) Stage {
	if opts.Header == "" {
		opts.Header = "X-CSRF-Token"
	}
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripFunc(func(req *http.Request) (*http.Response, error) {
			if !requiresProtection(req, opts) || req.Header.Get(opts.Header) != "" {
				return next.RoundTrip(req)
			}

			req, err := replayableRequest(req)
			if err != nil {
				return nil, err
			}

			first := req
			if opts.Mode == config.CSRFModePreemptive {
				token, tokenErr := opts.Tokens.Token(req.Context())
				if tokenErr != nil {
					return nil, tokenErr
				}
				first, err = cloneWithHeader(req, opts.Header, token)
				if err != nil {
					return nil, err
				}
			}

			resp, err := next.RoundTrip(first)
			if err != nil {
				return nil, err
			}
			if resp.StatusCode != http.StatusForbidden {
				return resp, nil
			}

			// The backend demands a (fresh) token: refresh and replay once.
			drain(resp)
			opts.Tokens.Clear()
			token, tokenErr := opts.Tokens.Token(req.Context())
			if tokenErr != nil {
				return nil, tokenErr
			}

			if opts.Metrics != nil {
				opts.Metrics.Count("csrf.replay", 1, map[string]string{"method": req.Method})
			}

			retry, err := cloneWithHeader(req, opts.Header, token)
			if err != nil {
				return nil, err
			}
			resp, err = next.RoundTrip(retry)
			if err != nil {
				return nil, err
			}
			if resp.StatusCode == http.StatusForbidden {
				// Terminal: the token was freshly fetched and still refused.
				opts.Tokens.Clear()
			}
			return resp, nil
		})
	}
}

// requiresProtection reports whether the request is a state-mutating call
// against a protected same-origin prefix. GET/HEAD/OPTIONS and foreign
// origins are always exempt.
func requiresProtection(req *http.Request, opts CSRFOptions) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return false
	}
	if !sameOrigin(opts.Origin, req.URL) {
		return false
	}
	return hasPrefix(req.URL.Path, opts.ProtectedPrefixes)
}

// replayableRequest ensures the request body can be sent twice. Requests
// built with http.NewRequest from byte readers already carry GetBody;
// anything else gets buffered here.
func replayableRequest(req *http.Request) (*http.Request, error) {
	if req.Body == nil || req.GetBody != nil {
		return req, nil
	}
	data, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	_ = req.Body.Close()

	buffered := req.Clone(req.Context())
	buffered.Body = io.NopCloser(bytes.NewReader(data))
	buffered.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	buffered.ContentLength = int64(len(data))
	return buffered, nil
}

// cloneWithHeader clones the request with a rewound body and the token set.
func cloneWithHeader(req *http.Request, header, token string) (*http.Request, error) {
	clone := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		clone.Body = body
	}
	clone.Header.Set(header, token)
	return clone, nil
}

// drain discards and closes a response body so the underlying connection
// can be reused for the replay.
func drain(resp *http.Response) {
	if resp.Body != nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
		_ = resp.Body.Close()
	}
}
