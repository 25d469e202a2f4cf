// Package transactionservice manages business logic layer of ledger transactions.
package transactionservice

import (
	"context"

	"github.com/go-petr/pet-ledger/internal/accountdelivery"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by transaction service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error)
	Get(ctx context.Context, id int64) (domain.Transaction, error)
	Delete(ctx context.Context, id int64) error
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo           Repo
	accountService accountdelivery.Service
}

// New returns transaction service struct to manage transaction bussines logic.
func New(tr Repo, as accountdelivery.Service) *Service {
	return &Service{
		repo:           tr,
		accountService: as,
	}
}

// validRequest enforces the double-entry invariants before anything is written:
// at least one detail line, no negative amounts, total debits equal total
// credits, and every referenced account exists in the chart of accounts.
func (s *Service) validRequest(ctx context.Context, arg domain.CreateTransactionParams) error {
	l := zerolog.Ctx(ctx)

	if len(arg.Details) == 0 {
		return domain.ErrNoTransactionDetails
	}

	totalDebit, totalCredit := decimal.Zero, decimal.Zero
	checked := map[int32]bool{}

	for _, detail := range arg.Details {
		if detail.Debit.IsNegative() || detail.Credit.IsNegative() {
			return domain.ErrNegativeAmount
		}

		totalDebit = totalDebit.Add(detail.Debit)
		totalCredit = totalCredit.Add(detail.Credit)

		if checked[detail.AccountID] {
			continue
		}

		if _, err := s.accountService.Get(ctx, detail.AccountID); err != nil {
			l.Info().Err(err).Int32("account_id", detail.AccountID).Send()
			return err
		}

		checked[detail.AccountID] = true
	}

	if !totalDebit.Equal(totalCredit) {
		return domain.ErrUnbalancedTransaction
	}

	return nil
}

// Create checks the posting request invariants and then posts it atomically.
func (s *Service) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	if err := s.validRequest(ctx, arg); err != nil {
		return domain.Transaction{}, err
	}

	transaction, err := s.repo.Create(ctx, arg)
	if err != nil {
		return transaction, err
	}

	return transaction, nil
}

// Get returns the posted transaction with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Transaction, error) {
	transaction, err := s.repo.Get(ctx, id)
	if err != nil {
		return transaction, err
	}

	return transaction, nil
}

// Delete removes the posted transaction with the given id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
