package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTransaction_SignedAmount(t *testing.T) {
	tests := []struct {
		name   string
		txType TransactionType
		amount string
		want   string
	}{
		{"income is positive", TransactionIncome, "50.00", "50.00"},
		{"expense is negative", TransactionExpense, "30.00", "-30.00"},
		{"expense keeps cents exact", TransactionExpense, "0.01", "-0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := Transaction{
				Amount: decimal.RequireFromString(tt.amount),
				Type:   tt.txType,
			}
			got := tx.SignedAmount()
			want := decimal.RequireFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("SignedAmount() = %s, want %s", got, want)
			}
		})
	}
}

func TestTransaction_Category(t *testing.T) {
	tx := Transaction{CategoryID: "cat-1", CategoryName: "Groceries"}
	if got := tx.Category(); got != "Groceries" {
		t.Errorf("Category() = %q, want Groceries", got)
	}

	uncategorized := Transaction{}
	if got := uncategorized.Category(); got != UncategorizedName {
		t.Errorf("Category() = %q, want %q", got, UncategorizedName)
	}
}

func TestTransaction_Month(t *testing.T) {
	tx := Transaction{Date: time.Date(2024, 5, 17, 10, 0, 0, 0, time.UTC)}
	if got := tx.Month(); got != "2024-05" {
		t.Errorf("Month() = %q, want 2024-05", got)
	}
}
