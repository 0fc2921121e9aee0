package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestValidateAccount(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		wantErr bool
	}{
		{
			name:    "valid checking account",
			account: Account{Name: "Main", Type: AccountChecking, Currency: "USD"},
		},
		{
			name:    "valid ETB savings account",
			account: Account{Name: "Savings", Type: AccountSavings, Currency: "ETB"},
		},
		{
			name:    "empty name",
			account: Account{Name: "  ", Type: AccountChecking, Currency: "USD"},
			wantErr: true,
		},
		{
			name:    "name too long",
			account: Account{Name: strings.Repeat("a", MaxNameLength+1), Type: AccountChecking, Currency: "USD"},
			wantErr: true,
		},
		{
			name:    "unknown type",
			account: Account{Name: "Main", Type: "brokerage", Currency: "USD"},
			wantErr: true,
		},
		{
			name:    "unsupported currency",
			account: Account{Name: "Main", Type: AccountChecking, Currency: "GBP"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAccount(tt.account)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAccount() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Errorf("error %v does not wrap ErrValidation", err)
			}
		})
	}
}

func TestValidateTransaction(t *testing.T) {
	valid := Transaction{
		Description: "Coffee",
		Amount:      decimal.RequireFromString("4.50"),
		Type:        TransactionExpense,
		AccountID:   "acc-1",
		Date:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name    string
		mutate  func(tx *Transaction)
		wantErr bool
	}{
		{"valid expense", func(tx *Transaction) {}, false},
		{"zero amount", func(tx *Transaction) { tx.Amount = decimal.Zero }, true},
		{"negative amount", func(tx *Transaction) { tx.Amount = decimal.RequireFromString("-1") }, true},
		{"blank description", func(tx *Transaction) { tx.Description = " " }, true},
		{"unknown type", func(tx *Transaction) { tx.Type = "transfer" }, true},
		{"missing account", func(tx *Transaction) { tx.AccountID = "" }, true},
		{"zero date", func(tx *Transaction) { tx.Date = time.Time{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			err := ValidateTransaction(tx)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTransaction() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateBudget(t *testing.T) {
	tests := []struct {
		name    string
		budget  Budget
		wantErr bool
	}{
		{"valid", Budget{CategoryID: "cat-1", Month: "2024-05", Limit: decimal.RequireFromString("200")}, false},
		{"missing category", Budget{Month: "2024-05", Limit: decimal.RequireFromString("200")}, true},
		{"bad month", Budget{CategoryID: "cat-1", Month: "05-2024", Limit: decimal.RequireFromString("200")}, true},
		{"zero limit", Budget{CategoryID: "cat-1", Month: "2024-05", Limit: decimal.Zero}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBudget(tt.budget)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBudget() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("user@example.com"); err != nil {
		t.Errorf("unexpected error for valid email: %v", err)
	}
	for _, bad := range []string{"", "user", "user@", "@example.com", "user@host"} {
		if err := ValidateEmail(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
