package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	domainonb "github.com/imaginarybank/webcore/internal/domain/onboarding"
	apperrors "github.com/imaginarybank/webcore/internal/errors"
	"github.com/imaginarybank/webcore/internal/idempotency"
	"github.com/imaginarybank/webcore/internal/ports"
)

// Idempotency key operations, one per mutating workflow step.
const (
	opIntent     = "intent"
	opConfirmKyc = "confirm-kyc"
	opActivate   = "activate"
)

// WorkflowOptions groups dependencies for Workflow.
type WorkflowOptions struct {
	API      ports.OnboardingAPI
	Uploader ports.DocumentUploader
	// Store is optional. When set, the registration snapshot, issued
	// idempotency keys included, is checkpointed after every completed
	// step so an interrupted enrollment can Resume.
	Store  ports.RegistrationStore
	Logger *slog.Logger
}

// Workflow drives one account enrollment through its states:
// collecting, intent requested, uploading, KYC confirmed, activated.
// Transitions are strictly sequential. A failed step leaves the
// workflow in its prior state so only that step is retried, with the
// step's original idempotency key. One Workflow instance serves one
// registration; it is safe for concurrent use but re-entrant
// submission of a step while one is outstanding is rejected as busy.
type Workflow struct {
	api      ports.OnboardingAPI
	uploader ports.DocumentUploader
	store    ports.RegistrationStore
	logger   *slog.Logger
	issuer   *idempotency.Issuer

	mu   sync.Mutex
	busy bool
	reg  *domainonb.Registration
}

// NewWorkflow constructs a Workflow in the collecting state.
func NewWorkflow(opts WorkflowOptions) *Workflow {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Workflow{
		api:      opts.API,
		uploader: opts.Uploader,
		store:    opts.Store,
		logger:   logger,
		issuer:   idempotency.NewIssuer(),
		reg:      domainonb.NewRegistration(),
	}
}

// State returns the workflow's current state.
func (w *Workflow) State() domainonb.State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reg.State
}

// Busy reports whether a step is currently outstanding.
func (w *Workflow) Busy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.busy
}

// RegistrationID returns the backend registration id, empty until the
// intent step succeeds.
func (w *Workflow) RegistrationID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reg.ID
}

// enter validates the transition and takes the busy flag.
func (w *Workflow) enter(from domainonb.State) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.busy {
		return apperrors.Busy("another onboarding step is still in progress")
	}
	if w.reg.State != from {
		return apperrors.Conflict(fmt.Sprintf("step requires state %q, registration is %q", from, w.reg.State))
	}
	w.busy = true
	return nil
}

// leave releases the busy flag and, on success, commits the new state.
func (w *Workflow) leave(to domainonb.State, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.busy = false
	if err == nil {
		w.reg.State = to
	}
}

// checkpoint persists the current snapshot when a store is configured.
// A checkpoint failure is logged, not surfaced: the step itself
// succeeded and in-memory progress is intact.
func (w *Workflow) checkpoint(ctx context.Context) {
	if w.store == nil {
		return
	}
	w.mu.Lock()
	w.reg.IdempotencyKeys = w.issuer.Snapshot()
	snapshot := *w.reg
	w.mu.Unlock()
	if snapshot.ID == "" {
		return
	}
	if err := w.store.Save(ctx, &snapshot); err != nil {
		w.logger.WarnContext(ctx, "registration checkpoint failed",
			"registration_id", snapshot.ID, "error", err)
	}
}

// StartIntent submits the contact/KYC form, moving the workflow from
// collecting to intent requested. The backend answers with the
// registration id and one presigned slot per document; a slot missing
// its required fields is fatal for this registration.
func (w *Workflow) StartIntent(ctx context.Context, contact domainonb.ContactDetails) error {
	if err := w.enter(domainonb.StateCollecting); err != nil {
		return err
	}
	err := w.startIntent(ctx, contact)
	w.leave(domainonb.StateIntentRequested, err)
	if err != nil {
		return err
	}
	w.checkpoint(ctx)
	return nil
}

func (w *Workflow) startIntent(ctx context.Context, contact domainonb.ContactDetails) error {
	result, err := w.api.StartIntent(ctx, ports.IntentInput{
		Contact:        contact,
		IdempotencyKey: w.issuer.KeyFor(opIntent),
	})
	if err != nil {
		return err
	}

	slots := make(map[domainonb.DocType]domainonb.PresignedTarget, len(result.Uploads))
	for _, target := range result.Uploads {
		if !target.Complete() {
			return apperrors.Internalf("registration %s: upload slot %s is missing required fields",
				result.RegistrationID, target.DocType)
		}
		slots[target.DocType] = target
	}
	for _, dt := range []domainonb.DocType{domainonb.DocTypeIDFront, domainonb.DocTypeSelfie} {
		if _, ok := slots[dt]; !ok {
			return apperrors.Internalf("registration %s: no upload slot for %s", result.RegistrationID, dt)
		}
	}

	w.mu.Lock()
	w.reg.ID = result.RegistrationID
	w.reg.Contact = contact
	w.reg.Slots = slots
	w.mu.Unlock()

	w.logger.InfoContext(ctx, "onboarding intent accepted", "registration_id", result.RegistrationID)
	return nil
}

// UploadDocuments validates both files against their presigned slots,
// then uploads them concurrently, moving the workflow from intent
// requested to uploading. Validation failures are raised before any
// bytes go over the wire. Both uploads must finish; one failure fails
// the step and the uploads already recorded stay recorded so a retry
// can skip them.
func (w *Workflow) UploadDocuments(ctx context.Context, files map[domainonb.DocType]domainonb.File) error {
	if err := w.enter(domainonb.StateIntentRequested); err != nil {
		return err
	}
	err := w.uploadDocuments(ctx, files)
	w.leave(domainonb.StateUploading, err)
	if err != nil {
		return err
	}
	w.checkpoint(ctx)
	return nil
}

func (w *Workflow) uploadDocuments(ctx context.Context, files map[domainonb.DocType]domainonb.File) error {
	w.mu.Lock()
	reg := *w.reg
	w.mu.Unlock()

	type pending struct {
		target domainonb.PresignedTarget
		file   domainonb.File
	}
	var work []pending
	for _, dt := range []domainonb.DocType{domainonb.DocTypeIDFront, domainonb.DocTypeSelfie} {
		if _, done := reg.Uploaded[dt]; done {
			continue
		}
		target, ok := reg.Slots[dt]
		if !ok {
			return apperrors.Internalf("registration %s: no upload slot for %s", reg.ID, dt)
		}
		file, ok := files[dt]
		if !ok {
			return apperrors.ValidationField(string(dt), "file is required")
		}
		// All files are checked before any upload starts.
		if err := target.CheckFile(file); err != nil {
			return err
		}
		work = append(work, pending{target: target, file: file})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range work {
		g.Go(func() error {
			etag, err := w.uploader.Upload(gctx, p.target, p.file)
			if err != nil {
				return err
			}
			w.mu.Lock()
			w.reg.Uploaded[p.target.DocType] = domainonb.UploadedObject{
				DocType:     p.target.DocType,
				Bucket:      p.target.Bucket,
				Key:         p.target.Key,
				ETag:        etag,
				SizeBytes:   p.file.Size,
				ContentType: p.file.ContentType,
			}
			w.mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w.logger.InfoContext(ctx, "onboarding documents uploaded", "registration_id", reg.ID)
	return nil
}

// ConfirmKyc reports both uploaded objects to the confirmation
// endpoint, moving the workflow from uploading to KYC confirmed.
func (w *Workflow) ConfirmKyc(ctx context.Context) error {
	if err := w.enter(domainonb.StateUploading); err != nil {
		return err
	}
	err := w.confirmKyc(ctx)
	w.leave(domainonb.StateKycConfirmed, err)
	if err != nil {
		return err
	}
	w.checkpoint(ctx)
	return nil
}

func (w *Workflow) confirmKyc(ctx context.Context) error {
	w.mu.Lock()
	reg := *w.reg
	w.mu.Unlock()

	objects := make([]domainonb.UploadedObject, 0, 2)
	for _, dt := range []domainonb.DocType{domainonb.DocTypeIDFront, domainonb.DocTypeSelfie} {
		obj, ok := reg.Uploaded[dt]
		if !ok {
			return apperrors.Internalf("registration %s: %s was never uploaded", reg.ID, dt)
		}
		objects = append(objects, obj)
	}

	return w.api.ConfirmKyc(ctx, ports.ConfirmInput{
		RegistrationID: reg.ID,
		Objects:        objects,
		IdempotencyKey: w.issuer.KeyFor(opConfirmKyc),
	})
}

// Activate submits the final identity and consent fields, moving the
// workflow to its terminal state. On success the snapshot is removed
// from the store; the caller should route to the authenticated entry.
func (w *Workflow) Activate(ctx context.Context, details domainonb.ActivationDetails) (ports.ActivateResult, error) {
	if err := w.enter(domainonb.StateKycConfirmed); err != nil {
		return ports.ActivateResult{}, err
	}

	w.mu.Lock()
	id := w.reg.ID
	w.mu.Unlock()

	result, err := w.api.Activate(ctx, ports.ActivateInput{
		RegistrationID: id,
		Details:        details,
		IdempotencyKey: w.issuer.KeyFor(opActivate),
	})
	w.leave(domainonb.StateActivated, err)
	if err != nil {
		return ports.ActivateResult{}, err
	}

	if w.store != nil {
		if err := w.store.Delete(ctx, id); err != nil {
			w.logger.WarnContext(ctx, "registration snapshot cleanup failed",
				"registration_id", id, "error", err)
		}
	}
	w.logger.InfoContext(ctx, "onboarding activated",
		"registration_id", id, "customer_id", result.CustomerID)
	return result, nil
}

// ResumeWorkflow loads a checkpointed registration and returns a
// workflow positioned at its saved state, with the original
// idempotency keys restored so retried steps replay instead of
// duplicating. Requires a configured store.
func ResumeWorkflow(ctx context.Context, opts WorkflowOptions, registrationID string) (*Workflow, error) {
	if opts.Store == nil {
		return nil, apperrors.Internal("resume requires a registration store")
	}
	reg, err := opts.Store.Load(ctx, registrationID)
	if err != nil {
		return nil, err
	}

	w := NewWorkflow(opts)
	w.issuer.Restore(reg.IdempotencyKeys)
	if reg.Slots == nil {
		reg.Slots = make(map[domainonb.DocType]domainonb.PresignedTarget)
	}
	if reg.Uploaded == nil {
		reg.Uploaded = make(map[domainonb.DocType]domainonb.UploadedObject)
	}
	w.reg = reg

	w.logger.InfoContext(ctx, "onboarding resumed",
		"registration_id", reg.ID, "state", string(reg.State))
	return w, nil
}
