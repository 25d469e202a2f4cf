// Package accountservice manages business logic layer of the chart of accounts.
package accountservice

import (
	"context"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error)
	Get(ctx context.Context, id int32) (domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Update(ctx context.Context, id int32, arg domain.CreateAccountParams) (domain.Account, error)
	Delete(ctx context.Context, id int32) (domain.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Create creates and returns a chart of accounts node.
func (s *Service) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	account, err := s.repo.Create(ctx, arg)
	if err != nil {
		return account, err
	}

	return account, nil
}

// Get returns the account with the given id.
func (s *Service) Get(ctx context.Context, id int32) (domain.Account, error) {
	account, err := s.repo.Get(ctx, id)
	if err != nil {
		return account, err
	}

	return account, nil
}

// List returns the full chart of accounts.
func (s *Service) List(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

// Update replaces the account's mutable fields and returns the new state.
//
// Reparenting is rejected if the new parent chain passes through the updated
// account itself, so the chart of accounts always remains a tree.
func (s *Service) Update(ctx context.Context, id int32, arg domain.CreateAccountParams) (domain.Account, error) {
	if err := s.checkCycle(ctx, id, arg.ParentID); err != nil {
		return domain.Account{}, err
	}

	account, err := s.repo.Update(ctx, id, arg)
	if err != nil {
		return account, err
	}

	return account, nil
}

// Delete removes the account and returns its prior state.
func (s *Service) Delete(ctx context.Context, id int32) (domain.Account, error) {
	account, err := s.repo.Delete(ctx, id)
	if err != nil {
		return account, err
	}

	return account, nil
}

func (s *Service) checkCycle(ctx context.Context, id int32, parentID *int32) error {
	for parentID != nil {
		if *parentID == id {
			return domain.ErrAccountCycle
		}

		parent, err := s.repo.Get(ctx, *parentID)
		if err != nil {
			if err == domain.ErrAccountNotFound {
				return domain.ErrParentAccountNotFound
			}

			return err
		}

		parentID = parent.ParentID
	}

	return nil
}
