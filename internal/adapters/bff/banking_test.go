package bff

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainbanking "github.com/imaginarybank/webcore/internal/domain/banking"
	apperrors "github.com/imaginarybank/webcore/internal/errors"
	"github.com/imaginarybank/webcore/internal/idempotency"
)

func TestClient_Overview(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/accounts/overview", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"customer_id": "cust-7",
			"accounts": [
				{
					"id": "acc-1",
					"account_number": "2200123456",
					"currency": "USD",
					"product_type": "savings",
					"status": "active",
					"balances": {"available": 120.5, "ledger": 125.5, "held": 5}
				}
			]
		}`))
	}))

	overview, err := client.Overview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "cust-7", overview.CustomerID)
	require.Len(t, overview.Accounts, 1)
	assert.Equal(t, 120.5, overview.Accounts[0].Balances.Available)
}

func TestClient_Statement_QueryParams(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/accounts/acc-1/statement", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2026-01-01T00:00:00Z", q.Get("from"))
		assert.Equal(t, "2026-01-31T23:59:59Z", q.Get("to"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "25", q.Get("page_size"))
		assert.Equal(t, "true", q.Get("include_counterparty"))
		_, _ = w.Write([]byte(`{"items":[],"page":2,"page_size":25,"total_items":0}`))
	}))

	page, err := client.Statement(context.Background(), domainbanking.StatementQuery{
		AccountID:           "acc-1",
		From:                from,
		To:                  to,
		Page:                2,
		PageSize:            25,
		IncludeCounterparty: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Empty(t, page.Items)
}

func TestClient_Statement_NotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"not_found","message":"unknown account"}`))
	}))

	_, err := client.Statement(context.Background(), domainbanking.StatementQuery{AccountID: "acc-x"})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestClient_SubmitPayment(t *testing.T) {
	var gotKey string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/payments", r.URL.Path)
		gotKey = r.Header.Get(idempotency.Header)
		_, _ = w.Write([]byte(`{"payment_id":"pay-3","status":"executed","journal_id":"jr-8"}`))
	}))

	receipt, err := client.SubmitPayment(context.Background(), domainbanking.PaymentInstruction{
		FromAccountID: "acc-1",
		ToAccount:     "2200987654",
		Amount:        40,
		Currency:      "USD",
		Reference:     "rent",
	}, "key-pay-1")

	require.NoError(t, err)
	assert.Equal(t, "key-pay-1", gotKey)
	assert.Equal(t, "pay-3", receipt.PaymentID)
	assert.Equal(t, "executed", receipt.Status)
}
