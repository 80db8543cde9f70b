package config

import "time"

// HTTPConfig contains backend endpoint and HTTP client configuration.
type HTTPConfig struct {
	// BaseURL is the origin of the application's trusted backend
	// (e.g., "https://app.imaginarybank.example"). Requests to any other
	// origin never carry credentials or CSRF tokens.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// Timeout bounds each outbound request. Zero disables the bound.
	Timeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`

	// UploadTimeout bounds presigned document uploads, which move file
	// bytes and need more headroom than API calls.
	UploadTimeout time.Duration `env:"HTTP_UPLOAD_TIMEOUT" envDefault:"2m"`

	// LoginPath is the login entry point users are redirected to when a
	// guarded route requires an authenticated session.
	LoginPath string `env:"APP_LOGIN_PATH" envDefault:"/login"`

	// LandingPath is the authenticated landing route users are redirected
	// to when a guest-only route is visited with an active session.
	LandingPath string `env:"APP_LANDING_PATH" envDefault:"/home"`

	// LoginStartPath is the navigation (not XHR) endpoint that begins the
	// OIDC login flow. The post-login destination rides on its "redirect"
	// query parameter.
	LoginStartPath string `env:"APP_LOGIN_START_PATH" envDefault:"/api/v1/auth/oidc/start"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	if h.Timeout < 0 {
		h.Timeout = 0
	}
	if h.UploadTimeout <= 0 {
		h.UploadTimeout = 2 * time.Minute
	}
	if h.LoginPath == "" {
		h.LoginPath = "/login"
	}
	if h.LandingPath == "" {
		h.LandingPath = "/home"
	}
}
