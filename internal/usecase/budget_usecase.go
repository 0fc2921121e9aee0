package usecase

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/aggregate"
	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/store"
	"github.com/iho/fintrack/internal/wire"
)

// BudgetUseCase handles budget CRUD against the remote service and
// derives budget-vs-spend summaries from the store snapshot.
type BudgetUseCase struct {
	gw    Gateway
	store *store.Store
}

// NewBudgetUseCase creates a new BudgetUseCase.
func NewBudgetUseCase(gw Gateway, st *store.Store) *BudgetUseCase {
	return &BudgetUseCase{gw: gw, store: st}
}

// BudgetInput represents input for creating or editing a budget.
type BudgetInput struct {
	CategoryID string
	Month      string
	Limit      decimal.Decimal
}

// List fetches the budgets for one month and replaces the store's
// collection.
func (uc *BudgetUseCase) List(ctx context.Context, month string) ([]domain.Budget, error) {
	if err := domain.ValidateMonth(month); err != nil {
		return nil, err
	}

	var out []wire.Budget
	path := "/budgets?month=" + url.QueryEscape(month)
	if err := uc.gw.Get(ctx, path, &out); err != nil {
		return nil, err
	}

	budgets := make([]domain.Budget, 0, len(out))
	for _, b := range out {
		budgets = append(budgets, b.ToDomain())
	}
	uc.store.ReplaceBudgets(budgets)
	return budgets, nil
}

// Create validates and creates a budget, patching the store on success.
func (uc *BudgetUseCase) Create(ctx context.Context, input BudgetInput) (domain.Budget, error) {
	if err := domain.ValidateBudget(domain.Budget{
		CategoryID: input.CategoryID,
		Month:      input.Month,
		Limit:      input.Limit,
	}); err != nil {
		return domain.Budget{}, err
	}

	var out wire.Budget
	body := wire.BudgetRequest{CategoryID: input.CategoryID, Month: input.Month, Limit: input.Limit}
	if err := uc.gw.Post(ctx, "/budgets", body, &out); err != nil {
		return domain.Budget{}, err
	}

	budget := out.ToDomain()
	uc.store.UpsertBudget(budget)
	return budget, nil
}

// Update validates and edits a budget, patching the store on success.
func (uc *BudgetUseCase) Update(ctx context.Context, id string, input BudgetInput) (domain.Budget, error) {
	if err := domain.ValidateBudget(domain.Budget{
		ID:         id,
		CategoryID: input.CategoryID,
		Month:      input.Month,
		Limit:      input.Limit,
	}); err != nil {
		return domain.Budget{}, err
	}

	var out wire.Budget
	body := wire.BudgetRequest{CategoryID: input.CategoryID, Month: input.Month, Limit: input.Limit}
	if err := uc.gw.Put(ctx, "/budgets/"+id, body, &out); err != nil {
		return domain.Budget{}, err
	}

	budget := out.ToDomain()
	uc.store.UpsertBudget(budget)
	return budget, nil
}

// Delete removes a budget on the server, then from the store.
func (uc *BudgetUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.gw.Delete(ctx, "/budgets/"+id); err != nil {
		return err
	}
	uc.store.RemoveBudget(id)
	return nil
}

// Summary derives the budget-vs-spend lines for one month from the
// current store snapshot.
func (uc *BudgetUseCase) Summary(month string) []aggregate.BudgetLine {
	return aggregate.BudgetSummary(uc.store.Budgets(), uc.store.Transactions(), month)
}
