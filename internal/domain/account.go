package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account.
type AccountType string

const (
	AccountChecking AccountType = "checking"
	AccountSavings  AccountType = "savings"
	AccountCredit   AccountType = "credit"
)

// Valid account types
var validAccountTypes = map[AccountType]bool{
	AccountChecking: true,
	AccountSavings:  true,
	AccountCredit:   true,
}

// IsValid checks if the account type is known.
func (t AccountType) IsValid() bool {
	return validAccountTypes[t]
}

// Account represents a money account in the ledger.
//
// BaseBalance is the opening balance set when the account is created or
// edited. Transaction activity never mutates it; the displayed balance is
// always derived as BaseBalance plus the signed sum of the account's
// transactions (see aggregate.AccountBalance).
type Account struct {
	ID          string
	Name        string
	Type        AccountType
	Currency    string
	BaseBalance decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
