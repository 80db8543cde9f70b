// Package csrf caches the backend-issued CSRF token for the lifetime of
// the current session.
package csrf

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Fetcher retrieves a fresh token from the backend's token endpoint.
type Fetcher interface {
	FetchToken(ctx context.Context) (string, error)
}

// Cache lazily fetches and memoizes the CSRF token. Concurrent callers
// coalesce onto a single in-flight fetch; at most one fetch is
// outstanding at any time. Unlike the session cache, a fetch failure is
// surfaced to the caller: a mutating operation that cannot obtain a
// token must fail visibly.
type Cache struct {
	fetcher Fetcher

	mu    sync.Mutex
	gen   uint64
	token string
	group singleflight.Group
}

// NewCache constructs a Cache backed by the given fetcher.
func NewCache(fetcher Fetcher) *Cache {
	return &Cache{fetcher: fetcher}
}

// Token returns the cached token, fetching it on first use. Callers
// arriving during an in-flight fetch attach to it instead of issuing a
// duplicate request.
func (c *Cache) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.token != "" {
		token := c.token
		c.mu.Unlock()
		return token, nil
	}
	gen := c.gen
	c.mu.Unlock()

	v, err, _ := c.group.Do("token", func() (any, error) {
		token, err := c.fetcher.FetchToken(ctx)
		if err != nil {
			return "", err
		}
		c.mu.Lock()
		// A Clear that ran while this fetch was in flight wins; caching
		// the result would hand the next mutating request a dead token.
		if c.gen == gen {
			c.token = token
		}
		c.mu.Unlock()
		return token, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Clear drops the cached token. The next Token call fetches a fresh
// one; a fetch still in flight resolves to its callers but is not
// cached. Called on logout and when the backend rejects the cached
// token.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.token = ""
	c.gen++
	c.mu.Unlock()
	c.group.Forget("token")
}
