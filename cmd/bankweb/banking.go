package main

import (
	"flag"
	"fmt"

	domainbanking "github.com/imaginarybank/webcore/internal/domain/banking"
)

func runStatement(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("statement", flag.ContinueOnError)
	accountID := fs.String("account", "", "account id (required)")
	from := fs.String("from", "", "start date, YYYY-MM-DD")
	to := fs.String("to", "", "end date, YYYY-MM-DD")
	page := fs.Int("page", 1, "page number")
	pageSize := fs.Int("page-size", 50, "items per page")
	counterparty := fs.Bool("counterparty", false, "include counterparty details")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fromTime, err := parseDate(*from)
	if err != nil {
		return fmt.Errorf("invalid -from: %w", err)
	}
	toTime, err := parseDate(*to)
	if err != nil {
		return fmt.Errorf("invalid -to: %w", err)
	}

	result, err := ctx.App.Banking.Statement(ctx.Ctx, domainbanking.StatementQuery{
		AccountID:           *accountID,
		From:                fromTime,
		To:                  toTime,
		Page:                *page,
		PageSize:            *pageSize,
		IncludeCounterparty: *counterparty,
	})
	if err != nil {
		return err
	}
	return printJSON(result)
}

func runPay(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("pay", flag.ContinueOnError)
	from := fs.String("from", "", "source account id (required)")
	to := fs.String("to", "", "destination account number (required)")
	amount := fs.Float64("amount", 0, "amount (required)")
	currency := fs.String("currency", "USD", "currency code")
	reference := fs.String("reference", "", "payment reference")
	if err := fs.Parse(args); err != nil {
		return err
	}

	submission, err := ctx.App.Banking.PreparePayment(domainbanking.PaymentInstruction{
		FromAccountID: *from,
		ToAccount:     *to,
		Amount:        *amount,
		Currency:      *currency,
		Reference:     *reference,
	})
	if err != nil {
		return err
	}

	receipt, err := submission.Submit(ctx.Ctx)
	if err != nil {
		return err
	}
	return printJSON(receipt)
}
