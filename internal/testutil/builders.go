package testutil

import (
	domainauth "github.com/imaginarybank/webcore/internal/domain/auth"
	domainonb "github.com/imaginarybank/webcore/internal/domain/onboarding"
)

// RegistrationBuilder provides a fluent interface for building
// Registration records for testing.
type RegistrationBuilder struct {
	reg *domainonb.Registration
}

// NewRegistration creates a RegistrationBuilder with sensible defaults:
// an intent-requested registration with both upload slots present.
func NewRegistration() *RegistrationBuilder {
	reg := domainonb.NewRegistration()
	reg.ID = "reg-test-1"
	reg.State = domainonb.StateIntentRequested
	reg.Contact = domainonb.ContactDetails{
		Channel:            "web",
		Locale:             "es-EC",
		Email:              "ana@example.com",
		Phone:              "+593991234567",
		NationalID:         "0912345678",
		IDFrontContentType: "image/jpeg",
		SelfieContentType:  "image/jpeg",
	}
	for _, dt := range []domainonb.DocType{domainonb.DocTypeIDFront, domainonb.DocTypeSelfie} {
		reg.Slots[dt] = domainonb.PresignedTarget{
			DocType:          dt,
			UploadURL:        "https://uploads.example.com/" + string(dt),
			Bucket:           "kyc-docs",
			Key:              reg.ID + "/" + string(dt) + ".jpg",
			MaxBytes:         5 << 20,
			ContentType:      "image/jpeg",
			ExpiresInSeconds: 900,
		}
	}
	return &RegistrationBuilder{reg: reg}
}

// WithID sets the registration ID, rewriting slot keys to match.
func (b *RegistrationBuilder) WithID(id string) *RegistrationBuilder {
	b.reg.ID = id
	for dt, slot := range b.reg.Slots {
		slot.Key = id + "/" + string(dt) + ".jpg"
		b.reg.Slots[dt] = slot
	}
	return b
}

// WithState sets the workflow state.
func (b *RegistrationBuilder) WithState(state domainonb.State) *RegistrationBuilder {
	b.reg.State = state
	return b
}

// WithSlot replaces one upload slot.
func (b *RegistrationBuilder) WithSlot(target domainonb.PresignedTarget) *RegistrationBuilder {
	b.reg.Slots[target.DocType] = target
	return b
}

// WithUploaded records a completed upload for one slot.
func (b *RegistrationBuilder) WithUploaded(obj domainonb.UploadedObject) *RegistrationBuilder {
	b.reg.Uploaded[obj.DocType] = obj
	return b
}

// WithIdempotencyKey pins the key for one workflow operation.
func (b *RegistrationBuilder) WithIdempotencyKey(op, key string) *RegistrationBuilder {
	b.reg.IdempotencyKeys[op] = key
	return b
}

// Build returns the constructed Registration.
func (b *RegistrationBuilder) Build() *domainonb.Registration {
	return b.reg
}

// SessionBuilder provides a fluent interface for building Session
// values for testing.
type SessionBuilder struct {
	sess domainauth.Session
}

// NewSession creates a SessionBuilder for an authenticated customer.
func NewSession() *SessionBuilder {
	return &SessionBuilder{
		sess: domainauth.Session{
			PrincipalID:   "cust-test-1",
			Email:         "ana@example.com",
			Roles:         []string{string(domainauth.RoleCustomer)},
			Authenticated: true,
		},
	}
}

// WithPrincipalID sets the principal ID.
func (b *SessionBuilder) WithPrincipalID(id string) *SessionBuilder {
	b.sess.PrincipalID = id
	return b
}

// WithRoles replaces the role set.
func (b *SessionBuilder) WithRoles(roles ...string) *SessionBuilder {
	b.sess.Roles = roles
	return b
}

// Anonymous turns the session into the unauthenticated sentinel.
func (b *SessionBuilder) Anonymous() *SessionBuilder {
	b.sess = domainauth.Anonymous()
	return b
}

// Build returns the constructed Session.
func (b *SessionBuilder) Build() domainauth.Session {
	return b.sess
}
