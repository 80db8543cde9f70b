package banking

// Package banking contains domain types for the customer banking app's
// read and payment operations.

import "time"

// Balances are the money positions of one account.
type Balances struct {
	Available float64 `json:"available"`
	Ledger    float64 `json:"ledger"`
	Held      float64 `json:"held"`
}

// Account is one account row in the overview.
type Account struct {
	ID            string   `json:"id"`
	AccountNumber string   `json:"account_number"`
	Currency      string   `json:"currency"`
	ProductType   string   `json:"product_type"`
	Status        string   `json:"status"`
	Balances      Balances `json:"balances"`
}

// Overview is the banking app's landing read.
type Overview struct {
	CustomerID string    `json:"customer_id"`
	Accounts   []Account `json:"accounts"`
}

// StatementQuery selects a slice of an account's statement.
type StatementQuery struct {
	AccountID           string
	From                time.Time
	To                  time.Time
	Page                int
	PageSize            int
	IncludeCounterparty bool
}

// Counterparty identifies the other side of a statement item.
type Counterparty struct {
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	Bank          string `json:"bank"`
}

// StatementItem is one statement line.
type StatementItem struct {
	ID           string        `json:"id"`
	PostedAt     time.Time     `json:"posted_at"`
	Description  string        `json:"description"`
	Amount       float64       `json:"amount"`
	Currency     string        `json:"currency"`
	Direction    string        `json:"direction"`
	Counterparty *Counterparty `json:"counterparty,omitempty"`
}

// StatementPage is one page of statement items.
type StatementPage struct {
	Items      []StatementItem `json:"items"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalItems int             `json:"total_items"`
}

// PaymentInstruction is one transfer order.
type PaymentInstruction struct {
	FromAccountID string  `json:"from_account_id"`
	ToAccount     string  `json:"to_account"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Reference     string  `json:"reference"`
}

// PaymentReceipt confirms an executed payment.
type PaymentReceipt struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
	JournalID string `json:"journal_id"`
}
