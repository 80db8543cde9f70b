package config

import (
	"fmt"
	"strings"
)

// CSRFMode selects the token attachment strategy for mutating requests.
type CSRFMode string

const (
	// CSRFModeOptimistic sends mutating requests without a token first and
	// replays exactly once with a freshly fetched token if the backend
	// answers 403.
	CSRFModeOptimistic CSRFMode = "optimistic"
	// CSRFModePreemptive fetches the cached token and attaches it before
	// any request matching the protected prefixes is sent.
	CSRFModePreemptive CSRFMode = "preemptive"
)

// UnmarshalText implements encoding.TextUnmarshaler for CSRFMode.
func (m *CSRFMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "optimistic", "preemptive":
		*m = CSRFMode(v)
		return nil
	default:
		return fmt.Errorf("invalid CSRFMode: %q (valid options: optimistic, preemptive)", v)
	}
}

// SecurityConfig groups CSRF policy and credential routing configuration.
type SecurityConfig struct {
	// CSRFMode is the deployment's single token attachment strategy.
	// Exactly one is active at a time; they are never blended.
	CSRFMode CSRFMode `env:"CSRF_MODE" envDefault:"optimistic"`

	// CSRFHeader is the header mutating requests carry the token on.
	CSRFHeader string `env:"CSRF_HEADER" envDefault:"X-CSRF-Token"`

	// CSRFTokenPath is the BFF endpoint that issues tokens.
	CSRFTokenPath string `env:"CSRF_TOKEN_PATH" envDefault:"/api/v1/session/csrf"`

	// ProtectedPrefixes are the backend path prefixes whose mutating
	// requests require a CSRF token.
	ProtectedPrefixes []string `env:"CSRF_PROTECTED_PREFIXES" envDefault:"/api/;/bff/" envSeparator:";"`

	// CredentialPrefixes are the backend path prefixes browser-stored
	// credentials (cookies) are attached to. Foreign origins never
	// receive credentials regardless of path.
	CredentialPrefixes []string `env:"CREDENTIAL_PREFIXES" envDefault:"/api/;/bff/" envSeparator:";"`

	// CorrelationHeader is the per-request correlation id header.
	CorrelationHeader string `env:"CORRELATION_HEADER" envDefault:"x-correlation-id"`

	// ErrorCorrelationExpr is a JMESPath expression locating the
	// correlation id inside structured error bodies for backends that
	// echo it there instead of on the response header.
	ErrorCorrelationExpr string `env:"ERROR_CORRELATION_EXPR" envDefault:"correlation_id"`
}

// Sanitize applies guardrails to security configuration values.
func (s *SecurityConfig) Sanitize() {
	if s.CSRFHeader == "" {
		s.CSRFHeader = "X-CSRF-Token"
	}
	if s.CorrelationHeader == "" {
		s.CorrelationHeader = "x-correlation-id"
	}
	s.ProtectedPrefixes = trimPrefixes(s.ProtectedPrefixes)
	s.CredentialPrefixes = trimPrefixes(s.CredentialPrefixes)
}

func trimPrefixes(prefixes []string) []string {
	out := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, "/") {
			p = "/" + p
		}
		out = append(out, p)
	}
	return out
}
