package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType decides the sign of a transaction's contribution.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// IsValid checks if the transaction type is known.
func (t TransactionType) IsValid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction is a single ledger movement bound to an account.
//
// Amount is always positive; the sign is derived from Type alone.
// CategoryID is empty when the transaction is uncategorized. The resolved
// names are carried so views do not need a second lookup when the
// reference is dangling.
type Transaction struct {
	ID           string
	Description  string
	Amount       decimal.Decimal
	Type         TransactionType
	Date         time.Time
	AccountID    string
	AccountName  string
	CategoryID   string
	CategoryName string
}

// SignedAmount returns the transaction's contribution to a balance:
// +Amount for income, -Amount for expense.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Category returns the transaction's category name, falling back to
// "Uncategorized" when the reference is absent.
func (t Transaction) Category() string {
	if t.CategoryName == "" {
		return UncategorizedName
	}
	return t.CategoryName
}

// Month returns the transaction's month bucket in YYYY-MM form.
func (t Transaction) Month() string {
	return t.Date.Format(MonthLayout)
}
