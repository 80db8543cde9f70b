package onboarding

// Package onboarding contains domain types for the account enrollment
// workflow: the registration record, its presigned upload slots, and
// the payloads exchanged with the BFF at each step.

import (
	"fmt"
	"strings"

	apperrors "github.com/imaginarybank/webcore/internal/errors"
)

// State identifies where a registration is in the enrollment flow.
// Transitions are strictly sequential; a failed step leaves the
// registration in its prior state so only that step is retried.
type State string

const (
	StateCollecting      State = "collecting"
	StateIntentRequested State = "intent_requested"
	StateUploading       State = "uploading"
	StateKycConfirmed    State = "kyc_confirmed"
	StateActivated       State = "activated"
)

// DocType identifies one of the two KYC document slots.
type DocType string

const (
	DocTypeIDFront DocType = "id_front"
	DocTypeSelfie  DocType = "selfie"
)

// Header is one required header for a presigned upload.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PresignedTarget describes one direct-to-storage upload slot handed
// out by the intent endpoint. It must be validated against the
// candidate file before any bytes go over the wire.
type PresignedTarget struct {
	DocType          DocType  `json:"doc_type"`
	UploadURL        string   `json:"upload_url"`
	Bucket           string   `json:"bucket"`
	Key              string   `json:"key"`
	Headers          []Header `json:"headers"`
	MaxBytes         int64    `json:"max_bytes"`
	ContentType      string   `json:"content_type"`
	ExpiresInSeconds int64    `json:"expires_in_seconds"`
}

// Complete reports whether the target carries every field the upload
// step depends on. An incomplete slot is a configuration fault of the
// registration, not a retryable condition.
func (t PresignedTarget) Complete() bool {
	return t.UploadURL != "" && t.Bucket != "" && t.Key != ""
}

// CheckFile validates a candidate file against the target without
// touching the network. Size is checked against MaxBytes; content
// type only when the target declares one.
func (t PresignedTarget) CheckFile(f File) error {
	if t.MaxBytes > 0 && f.Size > t.MaxBytes {
		return apperrors.ValidationField(string(t.DocType),
			fmt.Sprintf("file is %d bytes, limit is %d", f.Size, t.MaxBytes))
	}
	if t.ContentType != "" && !strings.EqualFold(f.ContentType, t.ContentType) {
		return apperrors.ValidationField(string(t.DocType),
			fmt.Sprintf("content type %q does not match expected %q", f.ContentType, t.ContentType))
	}
	return nil
}

// File is a candidate document for one upload slot.
type File struct {
	Name        string
	Size        int64
	ContentType string
	Content     []byte
}

// UploadedObject records the outcome of one presigned upload, as
// reported back to the KYC confirmation endpoint.
type UploadedObject struct {
	DocType     DocType `json:"doc_type"`
	Bucket      string  `json:"bucket"`
	Key         string  `json:"key"`
	ETag        string  `json:"etag"`
	SizeBytes   int64   `json:"size_bytes"`
	ContentType string  `json:"content_type"`
}

// ContactDetails carries the contact and KYC form data submitted with
// the intent request, plus the declared content types for the two
// documents.
type ContactDetails struct {
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	Channel             string  `json:"channel"`
	Locale              string  `json:"locale"`
	NationalID          string  `json:"national_id"`
	NationalIDIssueDate string  `json:"national_id_issue_date"`
	FingerprintCode     string  `json:"fingerprint_code"`
	MonthlyIncome       float64 `json:"monthly_income"`
	OccupationType      string  `json:"occupation_type"`
	IDFrontContentType  string  `json:"id_front_content_type"`
	SelfieContentType   string  `json:"selfie_content_type"`
}

// ActivationDetails carries the final identity and consent fields.
type ActivationDetails struct {
	FullName      string `json:"full_name"`
	Tin           string `json:"tin"`
	BirthDate     string `json:"birth_date"`
	Country       string `json:"country"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	AcceptedTerms bool   `json:"accepted_terms"`
}

// Registration is one in-progress enrollment. It is created by the
// intent step and mutated as each step completes. IdempotencyKeys
// holds the key issued for each mutating step so a resumed
// registration retries with the same keys it first sent.
type Registration struct {
	ID              string                      `json:"id"`
	State           State                       `json:"state"`
	Contact         ContactDetails              `json:"contact"`
	Slots           map[DocType]PresignedTarget `json:"slots"`
	Uploaded        map[DocType]UploadedObject  `json:"uploaded"`
	IdempotencyKeys map[string]string           `json:"idempotency_keys"`
}

// NewRegistration returns an empty registration in the collecting state.
func NewRegistration() *Registration {
	return &Registration{
		State:           StateCollecting,
		Slots:           make(map[DocType]PresignedTarget),
		Uploaded:        make(map[DocType]UploadedObject),
		IdempotencyKeys: make(map[string]string),
	}
}

// Slot returns the presigned target for the given document type.
func (r *Registration) Slot(dt DocType) (PresignedTarget, bool) {
	t, ok := r.Slots[dt]
	return t, ok
}
