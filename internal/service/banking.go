package service

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	domainbanking "github.com/imaginarybank/webcore/internal/domain/banking"
	apperrors "github.com/imaginarybank/webcore/internal/errors"
	"github.com/imaginarybank/webcore/internal/idempotency"
	"github.com/imaginarybank/webcore/internal/ports"
)

// BankingOptions groups dependencies for Banking.
type BankingOptions struct {
	API    ports.BankingAPI
	Logger *slog.Logger
}

// Banking exposes the accounts and payments operations.
type Banking struct {
	api    ports.BankingAPI
	logger *slog.Logger
}

// NewBanking constructs a Banking service.
func NewBanking(opts BankingOptions) *Banking {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Banking{api: opts.API, logger: logger}
}

// Overview reads the customer's accounts overview.
func (b *Banking) Overview(ctx context.Context) (domainbanking.Overview, error) {
	return b.api.Overview(ctx)
}

// Statement reads one page of an account's statement.
func (b *Banking) Statement(ctx context.Context, q domainbanking.StatementQuery) (domainbanking.StatementPage, error) {
	if q.AccountID == "" {
		return domainbanking.StatementPage{}, apperrors.ValidationField("account_id", "account is required")
	}
	return b.api.Statement(ctx, q)
}

// PaymentSubmission binds one payment instruction to one idempotency
// key. Submit may be called again after a failure; every attempt sends
// the same key, so the backend executes the instruction at most once.
type PaymentSubmission struct {
	banking     *Banking
	instruction domainbanking.PaymentInstruction
	key         string
}

// PreparePayment validates the instruction and issues its idempotency
// key. One prepared submission per user intent; preparing again is a
// new intent with a new key.
func (b *Banking) PreparePayment(in domainbanking.PaymentInstruction) (*PaymentSubmission, error) {
	if in.FromAccountID == "" {
		return nil, apperrors.ValidationField("from_account_id", "source account is required")
	}
	if in.ToAccount == "" {
		return nil, apperrors.ValidationField("to_account", "destination account is required")
	}
	if in.Amount <= 0 {
		return nil, apperrors.ValidationField("amount", "amount must be positive")
	}
	return &PaymentSubmission{
		banking:     b,
		instruction: in,
		key:         idempotency.NewKey(),
	}, nil
}

// Submit executes the payment.
func (s *PaymentSubmission) Submit(ctx context.Context) (domainbanking.PaymentReceipt, error) {
	receipt, err := s.banking.api.SubmitPayment(ctx, s.instruction, s.key)
	if err != nil {
		return domainbanking.PaymentReceipt{}, err
	}
	s.banking.logger.InfoContext(ctx, "payment executed",
		"payment_id", receipt.PaymentID, "status", receipt.Status)
	return receipt, nil
}

// LoginRedirect decides whether an operation's error should send the
// user to the login entry. Only unauthenticated errors redirect, and
// never from the login route itself, so a failing login page cannot
// loop.
func LoginRedirect(err error, currentPath, loginPath string) (string, bool) {
	if err == nil || !apperrors.IsUnauthenticated(err) {
		return "", false
	}
	if strings.HasPrefix(currentPath, loginPath) {
		return "", false
	}
	q := url.Values{"redirect": {currentPath}}
	return loginPath + "?" + q.Encode(), true
}
