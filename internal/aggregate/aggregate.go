// Package aggregate derives financial views from the raw ledger: account
// balances, budget-vs-spend summaries, and report rollups. Everything
// here is a pure function over a snapshot — no I/O, no mutation, no
// cached results — and all arithmetic is exact decimal, so repeated
// recomputation is deterministic to the cent.
package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// AccountBalance derives an account's balance: the stored base balance
// plus the signed sum of every transaction bound to the account.
func AccountBalance(account domain.Account, txs []domain.Transaction) decimal.Decimal {
	balance := account.BaseBalance
	for _, tx := range txs {
		if tx.AccountID != account.ID {
			continue
		}
		balance = balance.Add(tx.SignedAmount())
	}
	return balance
}

// BudgetLine is one budget's spend position for a month.
type BudgetLine struct {
	BudgetID  string
	Category  string
	Month     string
	Limit     decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
}

// BudgetSummary reports spend against each budget whose month matches.
// Spent sums the expense transactions of the budget's category in that
// month; a budget with no matching transactions reports zero. Budget
// order is preserved and unmatched categories are not synthesized.
func BudgetSummary(budgets []domain.Budget, txs []domain.Transaction, month string) []BudgetLine {
	spentByCategory := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type != domain.TransactionExpense || tx.Month() != month {
			continue
		}
		spentByCategory[tx.CategoryID] = spentByCategory[tx.CategoryID].Add(tx.Amount)
	}

	var lines []BudgetLine
	for _, b := range budgets {
		if b.Month != month {
			continue
		}
		spent := spentByCategory[b.CategoryID]
		lines = append(lines, BudgetLine{
			BudgetID:  b.ID,
			Category:  b.CategoryName,
			Month:     b.Month,
			Limit:     b.Limit,
			Spent:     spent,
			Remaining: b.Limit.Sub(spent),
		})
	}
	return lines
}
