package store

import (
	"testing"

	"github.com/iho/fintrack/internal/domain"
	"github.com/shopspring/decimal"
)

func TestStore_AccountsKeepInsertionOrder(t *testing.T) {
	s := New()
	s.ReplaceAccounts([]domain.Account{
		{ID: "a", Name: "Checking"},
		{ID: "b", Name: "Savings"},
		{ID: "c", Name: "Credit"},
	})
	s.UpsertAccount(domain.Account{ID: "b", Name: "Savings 2"})

	got := s.Accounts()
	wantIDs := []string{"a", "b", "c"}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d accounts, got %d", len(wantIDs), len(got))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("accounts[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
	if got[1].Name != "Savings 2" {
		t.Errorf("upsert did not patch: got %q", got[1].Name)
	}
}

func TestStore_RemoveAccountCascadesTransactions(t *testing.T) {
	s := New()
	s.ReplaceAccounts([]domain.Account{{ID: "a"}, {ID: "b"}})
	s.ReplaceTransactions([]domain.Transaction{
		{ID: "t1", AccountID: "a"},
		{ID: "t2", AccountID: "b"},
		{ID: "t3", AccountID: "a"},
	})

	s.RemoveAccount("a")

	if _, ok := s.Account("a"); ok {
		t.Error("account a still present")
	}
	txs := s.Transactions()
	if len(txs) != 1 || txs[0].ID != "t2" {
		t.Errorf("expected only t2 to survive, got %+v", txs)
	}
}

func TestStore_RemoveCategoryLeavesTransactions(t *testing.T) {
	s := New()
	s.ReplaceCategories([]domain.Category{{ID: "c1", Name: "Food"}})
	s.ReplaceTransactions([]domain.Transaction{{ID: "t1", AccountID: "a", CategoryID: "c1"}})

	s.RemoveCategory("c1")

	if len(s.Transactions()) != 1 {
		t.Fatal("transaction was dropped with its category")
	}
	if _, ok := s.Category("c1"); ok {
		t.Error("category still present")
	}
}

func TestStore_ResetClearsEverything(t *testing.T) {
	s := New()
	s.SetLoading(true)
	s.ReplaceAccounts([]domain.Account{{ID: "a"}})
	s.ReplaceBudgets([]domain.Budget{{ID: "b1", Limit: decimal.RequireFromString("100")}})

	s.Reset()

	if len(s.Accounts()) != 0 || len(s.Budgets()) != 0 {
		t.Error("entities survived reset")
	}
	if s.Loading() {
		t.Error("loading flag survived reset")
	}
}
