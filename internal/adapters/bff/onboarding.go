package bff

import (
	"context"
	"fmt"
	"net/http"

	domainonb "github.com/imaginarybank/webcore/internal/domain/onboarding"
	"github.com/imaginarybank/webcore/internal/idempotency"
	"github.com/imaginarybank/webcore/internal/ports"
)

const intentsPath = "/api/v1/onboarding/intents"

// presignedHeaderWire mirrors the BFF's header element shape.
type presignedHeaderWire struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type presignedUploadWire struct {
	DocType          string                `json:"doc_type"`
	UploadURL        string                `json:"upload_url"`
	Bucket           string                `json:"bucket"`
	Key              string                `json:"key"`
	Headers          []presignedHeaderWire `json:"headers"`
	MaxBytes         int64                 `json:"max_bytes"`
	ContentType      string                `json:"content_type"`
	ExpiresInSeconds int64                 `json:"expires_in_seconds"`
}

type intentRequest struct {
	Channel             string  `json:"channel"`
	Locale              string  `json:"locale"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	NationalID          string  `json:"national_id"`
	NationalIDIssueDate string  `json:"national_id_issue_date"`
	FingerprintCode     string  `json:"fingerprint_code"`
	MonthlyIncome       float64 `json:"monthly_income"`
	OccupationType      string  `json:"occupation_type"`
	IDFrontContentType  string  `json:"id_front_content_type"`
	SelfieContentType   string  `json:"selfie_content_type"`
}

type intentResponse struct {
	RegistrationID string                `json:"registration_id"`
	State          string                `json:"state"`
	Uploads        []presignedUploadWire `json:"uploads"`
}

// StartIntent submits the contact/KYC form and declared document content
// types, returning the registration id and its presigned upload slots.
func (c *Client) StartIntent(ctx context.Context, in ports.IntentInput) (ports.IntentResult, error) {
	contact := in.Contact
	req := intentRequest{
		Channel:             contact.Channel,
		Locale:              contact.Locale,
		Email:               contact.Email,
		Phone:               contact.Phone,
		NationalID:          contact.NationalID,
		NationalIDIssueDate: contact.NationalIDIssueDate,
		FingerprintCode:     contact.FingerprintCode,
		MonthlyIncome:       contact.MonthlyIncome,
		OccupationType:      contact.OccupationType,
		IDFrontContentType:  contact.IDFrontContentType,
		SelfieContentType:   contact.SelfieContentType,
	}

	var out intentResponse
	err := c.do(ctx, call{
		method:  http.MethodPost,
		path:    intentsPath,
		body:    req,
		headers: map[string]string{idempotency.Header: in.IdempotencyKey},
		out:     &out,
	})
	if err != nil {
		return ports.IntentResult{}, err
	}

	result := ports.IntentResult{
		RegistrationID: out.RegistrationID,
		State:          out.State,
	}
	for _, u := range out.Uploads {
		target := domainonb.PresignedTarget{
			DocType:          domainonb.DocType(u.DocType),
			UploadURL:        u.UploadURL,
			Bucket:           u.Bucket,
			Key:              u.Key,
			MaxBytes:         u.MaxBytes,
			ContentType:      u.ContentType,
			ExpiresInSeconds: u.ExpiresInSeconds,
		}
		for _, h := range u.Headers {
			target.Headers = append(target.Headers, domainonb.Header{Name: h.Name, Value: h.Value})
		}
		result.Uploads = append(result.Uploads, target)
	}
	return result, nil
}

type confirmRequest struct {
	Objects []domainonb.UploadedObject `json:"objects"`
}

// ConfirmKyc reports both uploaded objects to the confirmation endpoint.
func (c *Client) ConfirmKyc(ctx context.Context, in ports.ConfirmInput) error {
	return c.do(ctx, call{
		method:  http.MethodPost,
		path:    fmt.Sprintf("/api/v1/onboarding/registrations/%s/kyc", in.RegistrationID),
		body:    confirmRequest{Objects: in.Objects},
		headers: map[string]string{idempotency.Header: in.IdempotencyKey},
	})
}

type activateResponse struct {
	RegistrationID   string `json:"registration_id"`
	State            string `json:"state"`
	CustomerID       string `json:"customer_id"`
	PrimaryAccountID string `json:"primary_account_id"`
	ActivationRef    string `json:"activation_ref"`
}

// Activate submits the final identity and consent fields.
func (c *Client) Activate(ctx context.Context, in ports.ActivateInput) (ports.ActivateResult, error) {
	var out activateResponse
	err := c.do(ctx, call{
		method:  http.MethodPost,
		path:    fmt.Sprintf("/api/v1/onboarding/registrations/%s/activation", in.RegistrationID),
		body:    in.Details,
		headers: map[string]string{idempotency.Header: in.IdempotencyKey},
		out:     &out,
	})
	if err != nil {
		return ports.ActivateResult{}, err
	}
	return ports.ActivateResult{
		CustomerID:       out.CustomerID,
		PrimaryAccountID: out.PrimaryAccountID,
		ActivationRef:    out.ActivationRef,
	}, nil
}
