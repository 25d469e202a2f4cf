package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUnknownReport indicates an unrecognized report name.
var ErrUnknownReport = errors.New("unknown report")

// GeneralLedgerRow is one posting of an account in the general ledger.
// Accounts without postings appear once with nil transaction fields.
type GeneralLedgerRow struct {
	AccountID       int32               `json:"account_id"`
	AccountName     string              `json:"account_name"`
	AccountType     AccountType         `json:"account_type"`
	Date            *time.Time          `json:"date"`
	Description     *string             `json:"description"`
	ReferenceNumber *string             `json:"reference_number"`
	Debit           decimal.NullDecimal `json:"debit"`
	Credit          decimal.NullDecimal `json:"credit"`
}

// TrialBalanceRow holds the independent debit and credit totals of one account.
type TrialBalanceRow struct {
	AccountID   int32           `json:"account_id"`
	AccountName string          `json:"account_name"`
	AccountType AccountType     `json:"account_type"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
}

// BalanceRow holds one account's balance normalized to its natural side,
// so that an account in its usual state reports a positive number.
type BalanceRow struct {
	AccountID   int32           `json:"account_id"`
	AccountName string          `json:"account_name"`
	AccountType AccountType     `json:"account_type"`
	Balance     decimal.Decimal `json:"balance"`
}
