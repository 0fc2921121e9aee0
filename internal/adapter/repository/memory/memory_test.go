package memory

import (
	"errors"
	"testing"

	"github.com/iho/fintrack/internal/domain"
)

func TestUserRepository_EmailUniqueness(t *testing.T) {
	repo := NewUserRepository()
	if err := repo.Create(domain.User{ID: "u1", Email: "a@b.co"}, []byte("hash")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := repo.Create(domain.User{ID: "u2", Email: "a@b.co"}, []byte("hash"))
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	rec, err := repo.ByEmail("a@b.co")
	if err != nil || rec.User.ID != "u1" {
		t.Errorf("ByEmail = %+v, %v", rec, err)
	}
}

func TestAccountRepository_OwnerScoping(t *testing.T) {
	repo := NewAccountRepository()
	repo.Create("alice", domain.Account{ID: "a1", Name: "Checking"})
	repo.Create("bob", domain.Account{ID: "a2", Name: "Savings"})

	if got := repo.List("alice"); len(got) != 1 || got[0].ID != "a1" {
		t.Errorf("alice sees %+v", got)
	}
	if _, err := repo.Get("alice", "a2"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Error("cross-owner read must report not found")
	}
	if err := repo.Delete("alice", "a2"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Error("cross-owner delete must report not found")
	}
}

func TestTransactionRepository_DeleteByAccount(t *testing.T) {
	repo := NewTransactionRepository()
	repo.Create("alice", domain.Transaction{ID: "t1", AccountID: "a1"})
	repo.Create("alice", domain.Transaction{ID: "t2", AccountID: "a2"})
	repo.Create("bob", domain.Transaction{ID: "t3", AccountID: "a1"})

	repo.DeleteByAccount("alice", "a1")

	if got := repo.List("alice"); len(got) != 1 || got[0].ID != "t2" {
		t.Errorf("alice sees %+v", got)
	}
	if got := repo.List("bob"); len(got) != 1 {
		t.Errorf("another owner's rows were removed: %+v", got)
	}
}

func TestBudgetRepository_ListByMonth(t *testing.T) {
	repo := NewBudgetRepository()
	repo.Create("alice", domain.Budget{ID: "b1", Month: "2025-07"})
	repo.Create("alice", domain.Budget{ID: "b2", Month: "2025-08"})
	repo.Create("alice", domain.Budget{ID: "b3", Month: "2025-07"})

	got := repo.ListByMonth("alice", "2025-07")
	if len(got) != 2 || got[0].ID != "b1" || got[1].ID != "b3" {
		t.Errorf("ListByMonth = %+v", got)
	}
	if all := repo.ListByMonth("alice", ""); len(all) != 3 {
		t.Errorf("empty month must return all rows, got %d", len(all))
	}
}
