package config

import (
	"fmt"
	"strings"
	"time"
)

// WorkflowStore selects where the onboarding workflow checkpoints its
// registration snapshots.
type WorkflowStore string

const (
	// WorkflowStoreNone keeps workflow state purely in memory; a process
	// restart loses progress and a retried intent mints a new key.
	WorkflowStoreNone WorkflowStore = "none"
	// WorkflowStoreRedis checkpoints snapshots (including issued
	// idempotency keys) to Redis so a restarted process resumes mid-flow.
	WorkflowStoreRedis WorkflowStore = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for WorkflowStore.
func (w *WorkflowStore) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "none", "redis":
		*w = WorkflowStore(v)
		return nil
	default:
		return fmt.Errorf("invalid WorkflowStore: %q (valid options: none, redis)", v)
	}
}

// WorkflowConfig contains onboarding workflow configuration.
type WorkflowConfig struct {
	// Store selects the snapshot backend.
	Store WorkflowStore `env:"WORKFLOW_STORE" envDefault:"none"`

	// SnapshotTTL bounds how long an abandoned registration snapshot
	// survives in the store.
	SnapshotTTL time.Duration `env:"WORKFLOW_SNAPSHOT_TTL" envDefault:"24h"`

	// Channel is the enrollment channel reported to the BFF.
	Channel string `env:"WORKFLOW_CHANNEL" envDefault:"web"`

	// Locale is the locale reported with the intent request.
	Locale string `env:"WORKFLOW_LOCALE" envDefault:"es-EC"`
}

// Sanitize applies guardrails to workflow configuration values.
func (w *WorkflowConfig) Sanitize() {
	if w.SnapshotTTL <= 0 {
		w.SnapshotTTL = 24 * time.Hour
	}
	if w.Channel == "" {
		w.Channel = "web"
	}
}
