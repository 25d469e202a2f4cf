package test

import (
	"time"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/randompkg"
)

// RandomAccount returns a random account of the given type.
func RandomAccount(accountType domain.AccountType) domain.Account {
	return domain.Account{
		ID:        randompkg.IntBetween(1, 100),
		Name:      randompkg.AccountName(),
		Type:      accountType,
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}
