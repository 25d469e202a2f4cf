// Package accountrepo manages repository layer of the chart of accounts.
package accountrepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/dbpkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

func mapConstraintErr(err error) error {
	pqErr, ok := err.(*pq.Error)
	if !ok {
		return errorspkg.ErrInternal
	}

	switch pqErr.Constraint {
	case "accounts_parent_id_fkey":
		return domain.ErrParentAccountNotFound
	case "accounts_account_type_check":
		return domain.ErrInvalidAccountType
	case "accounts_name_check":
		return domain.ErrInvalidAccountName
	}

	return errorspkg.ErrInternal
}

const createQuery = `
INSERT INTO
    accounts (name, account_type, parent_id)
VALUES
    ($1, $2, $3)
RETURNING id, name, account_type, parent_id, created_at
`

// Create creates the account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.Name, arg.Type, arg.ParentID)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Type,
		&a.ParentID,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()
		return a, mapConstraintErr(err)
	}

	return a, nil
}

const getQuery = `
SELECT
	id, name, account_type, parent_id, created_at
FROM accounts
WHERE id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int32) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Type,
		&a.ParentID,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const listQuery = `
SELECT
	id, name, account_type, parent_id, created_at
FROM accounts
ORDER BY id
`

// List returns the full chart of accounts.
func (r *RepoPGS) List(ctx context.Context) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Type, &a.ParentID, &a.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updateQuery = `
UPDATE accounts
SET name = $1, account_type = $2, parent_id = $3
WHERE id = $4
RETURNING id, name, account_type, parent_id, created_at
`

// Update replaces the mutable fields of the account and returns the new state.
func (r *RepoPGS) Update(ctx context.Context, id int32, arg domain.CreateAccountParams) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery, arg.Name, arg.Type, arg.ParentID, id)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Type,
		&a.ParentID,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, mapConstraintErr(err)
	}

	return a, nil
}

const deleteQuery = `
DELETE FROM accounts
WHERE id = $1
RETURNING id, name, account_type, parent_id, created_at
`

// Delete removes the account with the given id and returns its prior state.
// Accounts referenced by transaction details or child accounts are not deletable.
func (r *RepoPGS) Delete(ctx context.Context, id int32) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, deleteQuery, id)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Type,
		&a.ParentID,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "transaction_details_account_id_fkey", "accounts_parent_id_fkey":
				return a, domain.ErrAccountReferenced
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}
