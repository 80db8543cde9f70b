// Package onboarding contains hand-written test doubles for the
// onboarding ports, suitable for unit tests without codegen.
package onboarding

import (
	"context"
	"sync"

	domainonb "github.com/imaginarybank/webcore/internal/domain/onboarding"
	apperrors "github.com/imaginarybank/webcore/internal/errors"
	"github.com/imaginarybank/webcore/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.RegistrationStore = (*MemoryRegistrationStore)(nil)
	_ ports.DocumentUploader  = (*FakeUploader)(nil)
)

// MemoryRegistrationStore is an in-memory RegistrationStore. Safe for
// concurrent use. Snapshots are deep-copied through JSON-free map
// copying so test mutations never alias stored state.
type MemoryRegistrationStore struct {
	mu   sync.Mutex
	regs map[string]domainonb.Registration
}

// NewMemoryRegistrationStore creates an empty store.
func NewMemoryRegistrationStore() *MemoryRegistrationStore {
	return &MemoryRegistrationStore{regs: make(map[string]domainonb.Registration)}
}

func (s *MemoryRegistrationStore) Save(_ context.Context, reg *domainonb.Registration) error {
	if reg == nil || reg.ID == "" {
		return apperrors.Validation("registration ID cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regs[reg.ID] = copyRegistration(*reg)
	return nil
}

func (s *MemoryRegistrationStore) Load(_ context.Context, id string) (*domainonb.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg, ok := s.regs[id]
	if !ok {
		return nil, apperrors.NotFound("registration")
	}
	out := copyRegistration(reg)
	return &out, nil
}

func (s *MemoryRegistrationStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.regs, id)
	return nil
}

// Len reports how many snapshots are held.
func (s *MemoryRegistrationStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.regs)
}

func copyRegistration(reg domainonb.Registration) domainonb.Registration {
	out := reg
	out.Slots = make(map[domainonb.DocType]domainonb.PresignedTarget, len(reg.Slots))
	for k, v := range reg.Slots {
		out.Slots[k] = v
	}
	out.Uploaded = make(map[domainonb.DocType]domainonb.UploadedObject, len(reg.Uploaded))
	for k, v := range reg.Uploaded {
		out.Uploaded[k] = v
	}
	out.IdempotencyKeys = make(map[string]string, len(reg.IdempotencyKeys))
	for k, v := range reg.IdempotencyKeys {
		out.IdempotencyKeys[k] = v
	}
	return out
}

// FakeUploader records uploads and answers with a deterministic ETag
// per document type. Set Err to force every upload to fail, or Block
// to hold uploads until released (for concurrency assertions).
type FakeUploader struct {
	Err   error
	Block chan struct{}

	mu    sync.Mutex
	calls []domainonb.DocType
}

func (u *FakeUploader) Upload(ctx context.Context, target domainonb.PresignedTarget, _ domainonb.File) (string, error) {
	u.mu.Lock()
	u.calls = append(u.calls, target.DocType)
	u.mu.Unlock()

	if u.Block != nil {
		select {
		case <-u.Block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if u.Err != nil {
		return "", u.Err
	}
	return "etag-" + string(target.DocType), nil
}

// Calls returns the document types uploaded so far, in call order.
func (u *FakeUploader) Calls() []domainonb.DocType {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]domainonb.DocType(nil), u.calls...)
}
