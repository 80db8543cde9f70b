package bff

// Package bff is the HTTP client for the backend-for-frontend's REST
// surface. Every call goes through the shared transport pipeline, so
// correlation tagging, credential routing, and CSRF policy apply
// uniformly without this package knowing about them.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	apperrors "github.com/imaginarybank/webcore/internal/errors"
	"github.com/imaginarybank/webcore/internal/ports"
)

// Ensure compile-time conformance to the ports the client serves.
var (
	_ ports.SessionAPI    = (*Client)(nil)
	_ ports.OnboardingAPI = (*Client)(nil)
	_ ports.BankingAPI    = (*Client)(nil)
)

// ClientOptions bundles dependencies for NewClient.
type ClientOptions struct {
	// BaseURL is the BFF origin, e.g. "https://app.imaginarybank.example".
	BaseURL string

	// HTTPClient is the pipeline-backed client. Required.
	HTTPClient *http.Client

	// Decoder maps structured error bodies; nil uses the default
	// correlation expression.
	Decoder *apperrors.Decoder

	// TokenPath is the CSRF token endpoint path.
	TokenPath string

	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Client talks to the BFF.
type Client struct {
	base      *url.URL
	http      *http.Client
	decoder   *apperrors.Decoder
	tokenPath string
	logger    *slog.Logger
}

// NewClient constructs a BFF client.
func NewClient(opts ClientOptions) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(opts.BaseURL, "/"))
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("bff client: invalid base URL %q", opts.BaseURL)
	}
	if opts.HTTPClient == nil {
		return nil, fmt.Errorf("bff client: HTTP client is required")
	}

	decoder := opts.Decoder
	if decoder == nil {
		decoder, err = apperrors.NewDecoder("")
		if err != nil {
			return nil, err
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tokenPath := opts.TokenPath
	if tokenPath == "" {
		tokenPath = "/api/v1/session/csrf"
	}

	return &Client{
		base:      base,
		http:      opts.HTTPClient,
		decoder:   decoder,
		tokenPath: tokenPath,
		logger:    logger,
	}, nil
}

// call describes one request to the BFF.
type call struct {
	method  string
	path    string
	query   url.Values
	body    any
	headers map[string]string
	out     any
}

// do executes a call, decoding a 2xx JSON body into c.out and mapping
// anything else through the error decoder.
func (c *Client) do(ctx context.Context, call call) error {
	u := *c.base
	// Keep any mount prefix the base URL carries (e.g. "/bff").
	u.Path = strings.TrimSuffix(c.base.Path, "/") + call.path
	if call.query != nil {
		u.RawQuery = call.query.Encode()
	}

	var body io.Reader
	if call.body != nil {
		data, err := json.Marshal(call.body)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, call.method, u.String(), body)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "build request")
	}
	if call.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for name, value := range call.headers {
		req.Header.Set(name, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.MapTransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.MapTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		mapped := c.decoder.MapResponse(resp, data)
		c.logger.DebugContext(ctx, "bff call failed",
			slog.String("method", call.method),
			slog.String("path", call.path),
			slog.Int("status", resp.StatusCode),
			slog.String("correlation_id", apperrors.GetCorrelationID(mapped)),
		)
		return mapped
	}

	if call.out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, call.out); err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode response body")
		}
	}
	return nil
}
