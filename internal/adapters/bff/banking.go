package bff

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	domainbanking "github.com/imaginarybank/webcore/internal/domain/banking"
	"github.com/imaginarybank/webcore/internal/idempotency"
)

const (
	overviewPath = "/api/v1/accounts/overview"
	paymentsPath = "/api/v1/payments"
)

// Overview reads the customer's accounts overview.
func (c *Client) Overview(ctx context.Context) (domainbanking.Overview, error) {
	var out domainbanking.Overview
	if err := c.do(ctx, call{method: http.MethodGet, path: overviewPath, out: &out}); err != nil {
		return domainbanking.Overview{}, err
	}
	return out, nil
}

// Statement reads one page of an account's statement.
func (c *Client) Statement(ctx context.Context, q domainbanking.StatementQuery) (domainbanking.StatementPage, error) {
	query := url.Values{}
	if !q.From.IsZero() {
		query.Set("from", q.From.Format(time.RFC3339))
	}
	if !q.To.IsZero() {
		query.Set("to", q.To.Format(time.RFC3339))
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(q.PageSize))
	}
	query.Set("include_counterparty", strconv.FormatBool(q.IncludeCounterparty))

	var out domainbanking.StatementPage
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   fmt.Sprintf("/api/v1/accounts/%s/statement", q.AccountID),
		query:  query,
		out:    &out,
	})
	if err != nil {
		return domainbanking.StatementPage{}, err
	}
	return out, nil
}

// SubmitPayment executes a payment. The CSRF token rides on the pipeline;
// the idempotency key makes retries of this instruction safe.
func (c *Client) SubmitPayment(ctx context.Context, in domainbanking.PaymentInstruction, idempotencyKey string) (domainbanking.PaymentReceipt, error) {
	var out domainbanking.PaymentReceipt
	err := c.do(ctx, call{
		method:  http.MethodPost,
		path:    paymentsPath,
		body:    in,
		headers: map[string]string{idempotency.Header: idempotencyKey},
		out:     &out,
	})
	if err != nil {
		return domainbanking.PaymentReceipt{}, err
	}
	return out, nil
}
