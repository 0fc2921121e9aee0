package memory

import (
	"sync"

	"github.com/iho/fintrack/internal/domain"
)

type budgetRecord struct {
	owner  string
	budget domain.Budget
}

// BudgetRepository stores budgets in insertion order per owner.
// Duplicate (category, month) pairs are allowed and treated as
// independent rows.
type BudgetRepository struct {
	mu      sync.RWMutex
	records map[string]budgetRecord
	order   []string
}

// NewBudgetRepository creates a new BudgetRepository.
func NewBudgetRepository() *BudgetRepository {
	return &BudgetRepository{records: make(map[string]budgetRecord)}
}

// Create stores a new budget for the owner.
func (r *BudgetRepository) Create(owner string, b domain.Budget) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[b.ID] = budgetRecord{owner: owner, budget: b}
	r.order = append(r.order, b.ID)
}

// Update replaces the owner's budget.
func (r *BudgetRepository) Update(owner string, b domain.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[b.ID]
	if !ok || rec.owner != owner {
		return domain.ErrBudgetNotFound
	}
	r.records[b.ID] = budgetRecord{owner: owner, budget: b}
	return nil
}

// Delete removes the owner's budget.
func (r *BudgetRepository) Delete(owner, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok || rec.owner != owner {
		return domain.ErrBudgetNotFound
	}
	delete(r.records, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the owner's budget by id.
func (r *BudgetRepository) Get(owner, id string) (domain.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok || rec.owner != owner {
		return domain.Budget{}, domain.ErrBudgetNotFound
	}
	return rec.budget, nil
}

// ListByMonth returns the owner's budgets for one month, in insertion
// order. An empty month returns all of them.
func (r *BudgetRepository) ListByMonth(owner, month string) []domain.Budget {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Budget, 0)
	for _, id := range r.order {
		rec := r.records[id]
		if rec.owner != owner {
			continue
		}
		if month != "" && rec.budget.Month != month {
			continue
		}
		out = append(out, rec.budget)
	}
	return out
}
