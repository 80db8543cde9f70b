package ports

import (
	"context"

	domainonb "github.com/imaginarybank/webcore/internal/domain/onboarding"
)

// IntentInput carries the contact/KYC form data for the start-intent call.
type IntentInput struct {
	Contact domainonb.ContactDetails
	// IdempotencyKey is issued once per registration and reused on retry.
	IdempotencyKey string
}

// IntentResult is the backend's answer to a start-intent call.
type IntentResult struct {
	RegistrationID string
	State          string
	Uploads        []domainonb.PresignedTarget
}

// ConfirmInput reports the uploaded objects to the KYC confirmation endpoint.
type ConfirmInput struct {
	RegistrationID string
	Objects        []domainonb.UploadedObject
	IdempotencyKey string
}

// ActivateInput carries the final activation payload.
type ActivateInput struct {
	RegistrationID string
	Details        domainonb.ActivationDetails
	IdempotencyKey string
}

// ActivateResult is the terminal outcome of a successful activation.
type ActivateResult struct {
	CustomerID       string
	PrimaryAccountID string
	ActivationRef    string
}

// OnboardingAPI is the BFF's enrollment surface.
type OnboardingAPI interface {
	StartIntent(ctx context.Context, in IntentInput) (IntentResult, error)
	ConfirmKyc(ctx context.Context, in ConfirmInput) error
	Activate(ctx context.Context, in ActivateInput) (ActivateResult, error)
}

// DocumentUploader pushes file bytes directly to object storage via a
// presigned target, bypassing the backend.
type DocumentUploader interface {
	// Upload PUTs the file to the target and returns the storage entity
	// tag with surrounding quotes stripped.
	Upload(ctx context.Context, target domainonb.PresignedTarget, file domainonb.File) (etag string, err error)
}

// RegistrationStore checkpoints in-progress registrations so an
// interrupted enrollment can resume with its original idempotency keys.
// A nil store disables checkpointing.
type RegistrationStore interface {
	Save(ctx context.Context, reg *domainonb.Registration) error
	Load(ctx context.Context, id string) (*domainonb.Registration, error)
	Delete(ctx context.Context, id string) error
}
