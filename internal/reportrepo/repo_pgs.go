// Package reportrepo derives financial reports from posted ledger lines.
package reportrepo

import (
	"context"
	"fmt"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/dbpkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates report repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns report RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const generalLedgerQuery = `
SELECT
	a.id AS account_id,
	a.name AS account_name,
	a.account_type,
	t.date,
	t.description,
	t.reference_number,
	td.debit,
	td.credit
FROM accounts a
LEFT JOIN transaction_details td ON a.id = td.account_id
LEFT JOIN transactions t ON td.transaction_id = t.id
ORDER BY a.id, t.date
`

// GeneralLedger returns every account's chronological postings. Accounts
// without postings appear once with null transaction fields.
func (r *RepoPGS) GeneralLedger(ctx context.Context) ([]domain.GeneralLedgerRow, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, generalLedgerQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.GeneralLedgerRow{}

	for rows.Next() {
		var glr domain.GeneralLedgerRow
		if err := rows.Scan(
			&glr.AccountID,
			&glr.AccountName,
			&glr.AccountType,
			&glr.Date,
			&glr.Description,
			&glr.ReferenceNumber,
			&glr.Debit,
			&glr.Credit,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, glr)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const trialBalanceQuery = `
SELECT
	a.id AS account_id,
	a.name AS account_name,
	a.account_type,
	COALESCE(SUM(td.debit), 0) AS total_debit,
	COALESCE(SUM(td.credit), 0) AS total_credit
FROM accounts a
LEFT JOIN transaction_details td ON a.id = td.account_id
GROUP BY a.id, a.name, a.account_type
ORDER BY a.account_type, a.name
`

// TrialBalance returns each account's independent debit and credit totals.
// Accounts without postings report zero on both sides.
func (r *RepoPGS) TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, trialBalanceQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.TrialBalanceRow{}

	for rows.Next() {
		var tbr domain.TrialBalanceRow
		if err := rows.Scan(
			&tbr.AccountID,
			&tbr.AccountName,
			&tbr.AccountType,
			&tbr.TotalDebit,
			&tbr.TotalCredit,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, tbr)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

// balanceQueryFmt normalizes every account's balance to its natural side:
// debit - credit for debit-natural types, credit - debit otherwise. The
// income statement and balance sheet are the same aggregation restricted to
// different account type subsets.
const balanceQueryFmt = `
SELECT
	a.id AS account_id,
	a.name AS account_name,
	a.account_type,
	COALESCE(SUM(CASE WHEN a.account_type = ANY($2) THEN td.debit - td.credit ELSE td.credit - td.debit END), 0) AS balance
FROM accounts a
LEFT JOIN transaction_details td ON a.id = td.account_id
WHERE a.account_type = ANY($1)
GROUP BY a.id, a.name, a.account_type
ORDER BY a.account_type %s, a.name
`

var (
	incomeStatementQuery = fmt.Sprintf(balanceQueryFmt, "DESC")
	balanceSheetQuery    = fmt.Sprintf(balanceQueryFmt, "ASC")
)

func typeNames(types []domain.AccountType) []string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}

	return names
}

func (r *RepoPGS) balances(ctx context.Context, query string, types []domain.AccountType) ([]domain.BalanceRow, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query,
		pq.Array(typeNames(types)),
		pq.Array(typeNames(domain.DebitNaturalTypes())),
	)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.BalanceRow{}

	for rows.Next() {
		var br domain.BalanceRow
		if err := rows.Scan(&br.AccountID, &br.AccountName, &br.AccountType, &br.Balance); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, br)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

// IncomeStatement returns natural-side balances of Revenue and Expense accounts.
func (r *RepoPGS) IncomeStatement(ctx context.Context) ([]domain.BalanceRow, error) {
	return r.balances(ctx, incomeStatementQuery, []domain.AccountType{domain.Revenue, domain.Expense})
}

// BalanceSheet returns natural-side balances of Asset, Liability and Equity accounts.
func (r *RepoPGS) BalanceSheet(ctx context.Context) ([]domain.BalanceRow, error) {
	return r.balances(ctx, balanceSheetQuery, []domain.AccountType{domain.Asset, domain.Liability, domain.Equity})
}
