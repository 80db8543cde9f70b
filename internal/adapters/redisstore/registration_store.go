// Package redisstore checkpoints in-progress registrations in Redis so
// an interrupted enrollment can resume with its original idempotency keys.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domainonb "github.com/imaginarybank/webcore/internal/domain/onboarding"
	apperrors "github.com/imaginarybank/webcore/internal/errors"
)

const defaultPrefix = "registration:"

// RegistrationStore persists registration snapshots with a TTL. A
// snapshot that outlives its presigned slots is still useful: the
// intent idempotency key replays the intent and mints fresh slots.
type RegistrationStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// StoreOptions configures a RegistrationStore.
type StoreOptions struct {
	Client redis.UniversalClient
	// Prefix defaults to "registration:".
	Prefix string
	// TTL bounds how long an abandoned enrollment is resumable.
	TTL time.Duration
}

// NewRegistrationStore creates a Redis-backed registration store.
func NewRegistrationStore(opts StoreOptions) (*RegistrationStore, error) {
	if opts.Client == nil {
		return nil, errors.New("registration store: redis client is required")
	}
	if opts.TTL <= 0 {
		return nil, errors.New("registration store: TTL must be positive")
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &RegistrationStore{client: opts.Client, prefix: prefix, ttl: opts.TTL}, nil
}

// Save writes the snapshot, refreshing its TTL.
func (s *RegistrationStore) Save(ctx context.Context, reg *domainonb.Registration) error {
	if reg == nil || reg.ID == "" {
		return errors.New("registration ID cannot be empty")
	}

	data, err := json.Marshal(reg)
	if err != nil {
		return fmt.Errorf("marshal registration: %w", err)
	}
	return s.client.Set(ctx, s.prefix+reg.ID, data, s.ttl).Err()
}

// Load reads a snapshot. A missing or expired snapshot is a NotFound
// AppError so callers can start a fresh enrollment instead of failing.
func (s *RegistrationStore) Load(ctx context.Context, id string) (*domainonb.Registration, error) {
	if id == "" {
		return nil, apperrors.NotFound("registration")
	}

	data, err := s.client.Get(ctx, s.prefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFound("registration")
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var reg domainonb.Registration
	if err := json.Unmarshal([]byte(data), &reg); err != nil {
		return nil, fmt.Errorf("unmarshal registration: %w", err)
	}
	return &reg, nil
}

// Delete removes a snapshot. Deleting an absent snapshot is not an error.
func (s *RegistrationStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.client.Del(ctx, s.prefix+id).Err()
}
