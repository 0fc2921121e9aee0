package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/store"
	"github.com/iho/fintrack/internal/usecase"
	"github.com/iho/fintrack/internal/usecase/mocks"
	"github.com/iho/fintrack/internal/wire"
)

func TestBudgetUseCase_ListQueriesByMonth(t *testing.T) {
	gw := mocks.NewMockGateway()
	gw.GetFunc = func(ctx context.Context, path string, out any) error {
		*out.(*[]wire.Budget) = []wire.Budget{
			{ID: "b1", CategoryID: wire.CategoryRef{ID: "c1", Name: "Food"}, Month: "2025-07", Limit: d("200")},
		}
		return nil
	}
	st := store.New()
	uc := usecase.NewBudgetUseCase(gw, st)

	budgets, err := uc.List(context.Background(), "2025-07")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(budgets) != 1 || budgets[0].CategoryName != "Food" {
		t.Fatalf("unexpected budgets: %+v", budgets)
	}

	calls := gw.Calls()
	if len(calls) != 1 || calls[0].Path != "/budgets?month=2025-07" {
		t.Errorf("unexpected calls: %+v", calls)
	}
}

func TestBudgetUseCase_ListRejectsBadMonth(t *testing.T) {
	gw := mocks.NewMockGateway()
	uc := usecase.NewBudgetUseCase(gw, store.New())

	_, err := uc.List(context.Background(), "July 2025")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(gw.Calls()) != 0 {
		t.Error("invalid month must not be dispatched")
	}
}

func TestBudgetUseCase_SummaryFromSnapshot(t *testing.T) {
	st := store.New()
	st.ReplaceBudgets([]domain.Budget{
		{ID: "b1", CategoryID: "c1", CategoryName: "Food", Month: "2025-07", Limit: d("200")},
	})
	st.ReplaceTransactions([]domain.Transaction{
		{ID: "t1", Type: domain.TransactionExpense, CategoryID: "c1", Amount: d("60"), Date: time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC)},
		{ID: "t2", Type: domain.TransactionExpense, CategoryID: "c1", Amount: d("90"), Date: time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC)},
		{ID: "t3", Type: domain.TransactionIncome, CategoryID: "c1", Amount: d("500"), Date: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)},
	})
	uc := usecase.NewBudgetUseCase(mocks.NewMockGateway(), st)

	lines := uc.Summary("2025-07")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if !lines[0].Spent.Equal(d("150")) {
		t.Errorf("spent = %s, want 150", lines[0].Spent)
	}
	if !lines[0].Remaining.Equal(d("50")) {
		t.Errorf("remaining = %s, want 50", lines[0].Remaining)
	}
}
