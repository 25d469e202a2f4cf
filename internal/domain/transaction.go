package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrTransactionNotFound indicates that the transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrNoTransactionDetails indicates a transaction without detail lines.
	ErrNoTransactionDetails = errors.New("transaction has no details")
	// ErrNegativeAmount indicates a negative debit or credit amount.
	ErrNegativeAmount = errors.New("negative amount")
	// ErrUnbalancedTransaction indicates that total debits do not equal total credits.
	ErrUnbalancedTransaction = errors.New("transaction debits do not equal credits")
	// ErrCurrencyNotFound indicates that the given currency does not exist.
	ErrCurrencyNotFound = errors.New("currency not found")
	// ErrTaxRateNotFound indicates that the given tax rate does not exist.
	ErrTaxRateNotFound = errors.New("tax rate not found")
)

// TransactionDetail is a single debit or credit line of a transaction.
type TransactionDetail struct {
	ID            int64           `json:"id"`
	TransactionID int64           `json:"transaction_id"`
	AccountID     int32           `json:"account_id"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	TaxRateID     *int32          `json:"tax_rate_id"`
}

// Transaction is a posted double-entry transaction with its detail lines.
type Transaction struct {
	ID              int64               `json:"id"`
	Date            time.Time           `json:"date"`
	Description     string              `json:"description"`
	ReferenceNumber *string             `json:"reference_number"`
	CreatedBy       string              `json:"created_by"`
	CurrencyID      int32               `json:"currency_id"`
	CreatedAt       time.Time           `json:"created_at"`
	Details         []TransactionDetail `json:"details"`
}

// CreateDetailParams is the input data for one detail line of a transaction.
type CreateDetailParams struct {
	AccountID int32           `json:"account_id"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	TaxRateID *int32          `json:"tax_rate_id"`
}

// CreateTransactionParams is the input data to post a transaction atomically.
type CreateTransactionParams struct {
	Date            time.Time            `json:"date"`
	Description     string               `json:"description"`
	ReferenceNumber *string              `json:"reference_number"`
	CurrencyID      int32                `json:"currency_id"`
	CreatedBy       string               `json:"created_by"`
	Details         []CreateDetailParams `json:"details"`
}
