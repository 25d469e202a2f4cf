// Package transactionrepo manages repository layer of ledger transactions.
package transactionrepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/dbpkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates transaction repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns transaction RepoPGS bound to an open transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns transaction RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

func mapConstraintErr(err error) error {
	pqErr, ok := err.(*pq.Error)
	if !ok {
		return errorspkg.ErrInternal
	}

	switch pqErr.Constraint {
	case "transaction_details_account_id_fkey":
		return domain.ErrAccountNotFound
	case "transaction_details_tax_rate_id_fkey":
		return domain.ErrTaxRateNotFound
	case "transactions_currency_id_fkey":
		return domain.ErrCurrencyNotFound
	case "transactions_created_by_fkey":
		return domain.ErrUserNotFound
	case "transaction_details_debit_check", "transaction_details_credit_check":
		return domain.ErrNegativeAmount
	}

	return errorspkg.ErrInternal
}

const createHeaderQuery = `
INSERT INTO
    transactions (date, description, reference_number, created_by, currency_id)
VALUES
    ($1, $2, $3, $4, $5)
RETURNING id, date, description, reference_number, created_by, currency_id, created_at
`

func (r *RepoPGS) createHeader(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createHeaderQuery,
		arg.Date,
		arg.Description,
		arg.ReferenceNumber,
		arg.CreatedBy,
		arg.CurrencyID,
	)

	var t domain.Transaction

	err := row.Scan(
		&t.ID,
		&t.Date,
		&t.Description,
		&t.ReferenceNumber,
		&t.CreatedBy,
		&t.CurrencyID,
		&t.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()
		return t, mapConstraintErr(err)
	}

	return t, nil
}

const createDetailQuery = `
INSERT INTO
    transaction_details (transaction_id, account_id, debit, credit, tax_rate_id)
VALUES
    ($1, $2, $3, $4, $5)
RETURNING id, transaction_id, account_id, debit, credit, tax_rate_id
`

func (r *RepoPGS) createDetail(ctx context.Context, transactionID int64, arg domain.CreateDetailParams) (domain.TransactionDetail, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createDetailQuery,
		transactionID,
		arg.AccountID,
		arg.Debit,
		arg.Credit,
		arg.TaxRateID,
	)

	var d domain.TransactionDetail

	err := row.Scan(
		&d.ID,
		&d.TransactionID,
		&d.AccountID,
		&d.Debit,
		&d.Credit,
		&d.TaxRateID,
	)

	if err != nil {
		l.Error().Err(err).Send()
		return d, mapConstraintErr(err)
	}

	return d, nil
}

// Create posts the transaction header and all of its detail lines within a
// single database transaction. Either every row is written or none are.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	var result domain.Transaction

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	txRepo := NewTxRepoPGS(tx)

	result, err = txRepo.createHeader(ctx, arg)
	if err != nil {
		return result, err
	}

	result.Details = make([]domain.TransactionDetail, 0, len(arg.Details))

	// Detail rows are written in input order.
	for _, detail := range arg.Details {
		created, err := txRepo.createDetail(ctx, result.ID, detail)
		if err != nil {
			return domain.Transaction{}, err
		}

		result.Details = append(result.Details, created)
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return domain.Transaction{}, errorspkg.ErrInternal
	}

	return result, nil
}

const getHeaderQuery = `
SELECT
	id, date, description, reference_number, created_by, currency_id, created_at
FROM transactions
WHERE id = $1
`

const getDetailsQuery = `
SELECT
	id, transaction_id, account_id, debit, credit, tax_rate_id
FROM transaction_details
WHERE transaction_id = $1
ORDER BY id
`

// Get returns the transaction with the given id along with its detail lines.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getHeaderQuery, id)

	var t domain.Transaction

	err := row.Scan(
		&t.ID,
		&t.Date,
		&t.Description,
		&t.ReferenceNumber,
		&t.CreatedBy,
		&t.CurrencyID,
		&t.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return t, domain.ErrTransactionNotFound
		}

		return t, errorspkg.ErrInternal
	}

	rows, err := r.db.QueryContext(ctx, getDetailsQuery, id)
	if err != nil {
		l.Error().Err(err).Send()
		return t, errorspkg.ErrInternal
	}
	defer rows.Close()

	t.Details = []domain.TransactionDetail{}

	for rows.Next() {
		var d domain.TransactionDetail
		if err := rows.Scan(&d.ID, &d.TransactionID, &d.AccountID, &d.Debit, &d.Credit, &d.TaxRateID); err != nil {
			l.Error().Err(err).Send()
			return t, errorspkg.ErrInternal
		}

		t.Details = append(t.Details, d)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const deleteDetailsQuery = `
DELETE FROM transaction_details
WHERE transaction_id = $1
`

const deleteHeaderQuery = `
DELETE FROM transactions
WHERE id = $1
RETURNING id
`

// Delete removes the transaction and its detail lines atomically.
func (r *RepoPGS) Delete(ctx context.Context, id int64) error {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	if _, err := tx.ExecContext(ctx, deleteDetailsQuery, id); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	var deletedID int64
	if err := tx.QueryRowContext(ctx, deleteHeaderQuery, id).Scan(&deletedID); err != nil {
		if err == sql.ErrNoRows {
			return domain.ErrTransactionNotFound
		}

		l.Error().Err(err).Send()

		return errorspkg.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}
