// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrParentAccountNotFound indicates that the given parent account does not exist.
	ErrParentAccountNotFound = errors.New("parent account not found")
	// ErrInvalidAccountType indicates that the account type is not one of the supported types.
	ErrInvalidAccountType = errors.New("invalid account type")
	// ErrInvalidAccountName indicates an empty account name.
	ErrInvalidAccountName = errors.New("invalid account name")
	// ErrAccountReferenced indicates that the account is referenced by transaction details or child accounts.
	ErrAccountReferenced = errors.New("account is referenced and cannot be deleted")
	// ErrAccountCycle indicates that the requested parent would introduce a cycle in the chart of accounts.
	ErrAccountCycle = errors.New("account hierarchy cycle")
)

// AccountType classifies an account within the chart of accounts.
type AccountType string

// Supported account types.
const (
	Asset     AccountType = "Asset"
	Liability AccountType = "Liability"
	Equity    AccountType = "Equity"
	Revenue   AccountType = "Revenue"
	Expense   AccountType = "Expense"
)

// AccountTypes holds all the supported account types.
var AccountTypes = []AccountType{Asset, Liability, Equity, Revenue, Expense}

// IsValid returns true if the account type is supported.
func (t AccountType) IsValid() bool {
	for _, at := range AccountTypes {
		if t == at {
			return true
		}
	}

	return false
}

// DebitNatural returns true if the account type increases on the debit side.
// Asset and Expense accounts are debit-natural; Liability, Equity and Revenue
// accounts are credit-natural.
func (t AccountType) DebitNatural() bool {
	return t == Asset || t == Expense
}

// DebitNaturalTypes returns the account types whose natural balance side is debit.
func DebitNaturalTypes() []AccountType {
	types := []AccountType{}

	for _, t := range AccountTypes {
		if t.DebitNatural() {
			types = append(types, t)
		}
	}

	return types
}

// Account is a node in the chart of accounts.
type Account struct {
	ID        int32       `json:"id"`
	Name      string      `json:"name"`
	Type      AccountType `json:"account_type"`
	ParentID  *int32      `json:"parent_id"`
	CreatedAt time.Time   `json:"created_at"`
}

// CreateAccountParams is the input data to create an account.
type CreateAccountParams struct {
	Name     string      `json:"name"`
	Type     AccountType `json:"account_type"`
	ParentID *int32      `json:"parent_id"`
}
