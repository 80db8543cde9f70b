package service

// Package service contains the orchestration layer: caches, guards,
// the auth flow, and the onboarding workflow. Services depend on port
// interfaces only.

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	domainauth "github.com/imaginarybank/webcore/internal/domain/auth"
	"github.com/imaginarybank/webcore/internal/ports"
)

// SessionCacheOptions groups dependencies for SessionCache.
type SessionCacheOptions struct {
	API    ports.SessionAPI
	Logger *slog.Logger
}

// SessionCache holds the current identity. The first Get issues one
// fetch; concurrent callers share that in-flight fetch. A failed fetch,
// including a 401, is cached as the anonymous sentinel so callers never
// have to distinguish "not logged in" from "couldn't ask". Invalidate
// after login and logout or the stale identity leaks across navigation.
type SessionCache struct {
	api    ports.SessionAPI
	logger *slog.Logger

	mu      sync.Mutex
	gen     uint64
	session *domainauth.Session
	group   singleflight.Group
}

// NewSessionCache constructs a SessionCache.
func NewSessionCache(opts SessionCacheOptions) *SessionCache {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionCache{api: opts.API, logger: logger}
}

// Get returns the cached session, fetching it once if needed. It never
// returns an error: any fetch failure resolves to the anonymous
// sentinel and is cached like a success.
func (c *SessionCache) Get(ctx context.Context) domainauth.Session {
	c.mu.Lock()
	if c.session != nil {
		sess := *c.session
		c.mu.Unlock()
		return sess
	}
	gen := c.gen
	c.mu.Unlock()

	v, _, _ := c.group.Do("session", func() (any, error) {
		sess, err := c.api.FetchSession(ctx)
		if err != nil {
			c.logger.DebugContext(ctx, "session fetch resolved to anonymous", "error", err)
			sess = domainauth.Anonymous()
		}
		c.mu.Lock()
		// An Invalidate that ran while this fetch was in flight wins;
		// caching the result would resurrect a pre-invalidation value.
		if c.gen == gen {
			c.session = &sess
		}
		c.mu.Unlock()
		return sess, nil
	})
	return v.(domainauth.Session)
}

// Invalidate drops the cached value. The next Get re-fetches; a fetch
// still in flight resolves to its callers but is not cached.
func (c *SessionCache) Invalidate() {
	c.mu.Lock()
	c.session = nil
	c.gen++
	c.mu.Unlock()
	c.group.Forget("session")
}
