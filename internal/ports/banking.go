package ports

import (
	"context"

	domainbanking "github.com/imaginarybank/webcore/internal/domain/banking"
)

// BankingAPI is the BFF's accounts and payments surface.
type BankingAPI interface {
	// Overview reads the customer's accounts overview.
	Overview(ctx context.Context) (domainbanking.Overview, error)

	// Statement reads one page of an account's statement.
	Statement(ctx context.Context, q domainbanking.StatementQuery) (domainbanking.StatementPage, error)

	// SubmitPayment executes a payment. The idempotency key makes retries
	// of the same instruction safe; the CSRF token rides on the pipeline.
	SubmitPayment(ctx context.Context, in domainbanking.PaymentInstruction, idempotencyKey string) (domainbanking.PaymentReceipt, error)
}
