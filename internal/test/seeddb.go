// Package test provides shared test helpers.
package test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-petr/pet-ledger/internal/accountrepo"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/transactionrepo"
	"github.com/go-petr/pet-ledger/internal/userrepo"
	"github.com/go-petr/pet-ledger/pkg/currencypkg"
	"github.com/go-petr/pet-ledger/pkg/dbpkg"
	"github.com/go-petr/pet-ledger/pkg/passpkg"
	"github.com/go-petr/pet-ledger/pkg/randompkg"
	"github.com/shopspring/decimal"
)

// SeedUser creates random User inside a test transaction.
func SeedUser(t *testing.T, tx dbpkg.SQLInterface) domain.User {
	t.Helper()

	hashedPassword, err := passpkg.Hash(randompkg.String(32))
	if err != nil {
		t.Fatalf("passpkg.Hash(randompkg.String(32)) returned error: %v", err)
	}

	arg := domain.CreateUserParams{
		Username:       randompkg.Owner(),
		HashedPassword: hashedPassword,
		Email:          randompkg.Email(),
	}

	userRepo := userrepo.NewRepoPGS(tx)
	user, err := userRepo.Create(context.Background(), arg)

	if err != nil {
		t.Fatalf("userRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return user
}

// SeedAccount creates a random account of the given type inside a test transaction.
func SeedAccount(t *testing.T, tx dbpkg.SQLInterface, accountType domain.AccountType) domain.Account {
	t.Helper()

	accountRepo := accountrepo.NewRepoPGS(tx)

	arg := domain.CreateAccountParams{
		Name: randompkg.AccountName(),
		Type: accountType,
	}

	account, err := accountRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("accountRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return account
}

// SeedChildAccount creates a random account of the given type under the given parent.
func SeedChildAccount(t *testing.T, tx dbpkg.SQLInterface, accountType domain.AccountType, parentID int32) domain.Account {
	t.Helper()

	accountRepo := accountrepo.NewRepoPGS(tx)

	arg := domain.CreateAccountParams{
		Name:     randompkg.AccountName(),
		Type:     accountType,
		ParentID: &parentID,
	}

	account, err := accountRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("accountRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return account
}

// Posting pairs an account with the amounts to post to it.
type Posting struct {
	AccountID int32
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// SeedTransaction posts a transaction with one detail line per posting.
//
// The postings are not checked for balance so tests can seed one-sided
// amounts deliberately.
func SeedTransaction(t *testing.T, db *sql.DB, username string, postings ...Posting) domain.Transaction {
	t.Helper()

	details := make([]domain.CreateDetailParams, 0, len(postings))
	for _, p := range postings {
		details = append(details, domain.CreateDetailParams{
			AccountID: p.AccountID,
			Debit:     p.Debit,
			Credit:    p.Credit,
		})
	}

	arg := domain.CreateTransactionParams{
		Date:        time.Now().UTC().Truncate(24 * time.Hour),
		Description: randompkg.String(20),
		CreatedBy:   username,
		CurrencyID:  currencypkg.USD,
		Details:     details,
	}

	transactionRepo := transactionrepo.NewRepoPGS(db)

	transaction, err := transactionRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("transactionRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return transaction
}
