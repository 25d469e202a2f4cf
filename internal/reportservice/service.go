// Package reportservice manages business logic layer of financial reports.
package reportservice

import (
	"context"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// Repo provides data access layer interface needed by report service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package reportservice
type Repo interface {
	GeneralLedger(ctx context.Context) ([]domain.GeneralLedgerRow, error)
	TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error)
	IncomeStatement(ctx context.Context) ([]domain.BalanceRow, error)
	BalanceSheet(ctx context.Context) ([]domain.BalanceRow, error)
}

// Service facilitates report service layer logic.
//
// Reports are always derived from current storage state; nothing is cached.
type Service struct {
	repo Repo
}

// New returns report service struct to manage report derivation.
func New(rr Repo) *Service {
	return &Service{repo: rr}
}

// GeneralLedger returns the chronological postings of every account.
func (s *Service) GeneralLedger(ctx context.Context) ([]domain.GeneralLedgerRow, error) {
	return s.repo.GeneralLedger(ctx)
}

// TrialBalance returns the debit and credit totals of every account.
func (s *Service) TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	return s.repo.TrialBalance(ctx)
}

// IncomeStatement returns Revenue and Expense account balances.
func (s *Service) IncomeStatement(ctx context.Context) ([]domain.BalanceRow, error) {
	return s.repo.IncomeStatement(ctx)
}

// BalanceSheet returns Asset, Liability and Equity account balances.
func (s *Service) BalanceSheet(ctx context.Context) ([]domain.BalanceRow, error) {
	return s.repo.BalanceSheet(ctx)
}
