// Package idempotency issues the client-generated keys that make retried
// mutating requests safe to replay server-side.
package idempotency

import (
	"sync"

	"github.com/google/uuid"
)

// Header is the request header idempotency keys travel on.
const Header = "Idempotency-Key"

// NewKey returns a globally unique key. Each logical operation gets its
// own key; retries of that operation must reuse it.
func NewKey() string {
	return uuid.NewString()
}

// Issuer memoizes one key per named operation so a retried step resends
// the exact key it first generated, while distinct steps never share one.
// The zero value is not usable; construct with NewIssuer. Safe for
// concurrent use.
type Issuer struct {
	mu   sync.Mutex
	keys map[string]string
}

// NewIssuer constructs an empty Issuer.
func NewIssuer() *Issuer {
	return &Issuer{keys: make(map[string]string)}
}

// KeyFor returns the key for the named operation, generating it on first
// use and returning the same value on every subsequent call.
func (i *Issuer) KeyFor(operation string) string {
	i.mu.Lock()
	defer i.mu.Unlock()
	if k, ok := i.keys[operation]; ok {
		return k
	}
	k := NewKey()
	i.keys[operation] = k
	return k
}

// Restore seeds the issuer with previously generated keys, used when a
// persisted workflow resumes and must retry with its original keys.
func (i *Issuer) Restore(keys map[string]string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for op, k := range keys {
		if k != "" {
			i.keys[op] = k
		}
	}
}

// Snapshot returns a copy of the issued keys keyed by operation name.
func (i *Issuer) Snapshot() map[string]string {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := make(map[string]string, len(i.keys))
	for op, k := range i.keys {
		out[op] = k
	}
	return out
}
