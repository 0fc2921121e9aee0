// Package store holds the raw ledger as last fetched from the remote
// service. It is a passive mirror: entities are replaced or patched after
// completed remote calls and read back as insertion-ordered snapshots.
// No derived value lives here.
package store

import (
	"sync"

	"github.com/iho/fintrack/internal/domain"
)

// Store is the normalized in-memory entity store.
type Store struct {
	mu sync.RWMutex

	accounts     map[string]domain.Account
	transactions map[string]domain.Transaction
	categories   map[string]domain.Category
	budgets      map[string]domain.Budget

	// insertion order per collection, so snapshots are stable
	accountOrder     []string
	transactionOrder []string
	categoryOrder    []string
	budgetOrder      []string

	loading bool
}

// New creates an empty store.
func New() *Store {
	s := &Store{}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.accounts = make(map[string]domain.Account)
	s.transactions = make(map[string]domain.Transaction)
	s.categories = make(map[string]domain.Category)
	s.budgets = make(map[string]domain.Budget)
	s.accountOrder = nil
	s.transactionOrder = nil
	s.categoryOrder = nil
	s.budgetOrder = nil
	s.loading = false
}

// Reset drops every entity and clears the loading flag. Called on logout
// and on terminal session failure.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// SetLoading flips the combined-fetch loading indicator.
func (s *Store) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

// Loading reports whether a combined fetch is in progress.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// ReplaceAccounts swaps the account collection for the server's.
func (s *Store) ReplaceAccounts(accounts []domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = make(map[string]domain.Account, len(accounts))
	s.accountOrder = s.accountOrder[:0]
	for _, a := range accounts {
		s.accounts[a.ID] = a
		s.accountOrder = append(s.accountOrder, a.ID)
	}
}

// UpsertAccount patches one account after a create or edit.
func (s *Store) UpsertAccount(a domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[a.ID]; !ok {
		s.accountOrder = append(s.accountOrder, a.ID)
	}
	s.accounts[a.ID] = a
}

// RemoveAccount drops an account and every transaction bound to it,
// mirroring the server-side cascade.
func (s *Store) RemoveAccount(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; !ok {
		return
	}
	delete(s.accounts, id)
	s.accountOrder = removeID(s.accountOrder, id)

	kept := s.transactionOrder[:0]
	for _, txID := range s.transactionOrder {
		if s.transactions[txID].AccountID == id {
			delete(s.transactions, txID)
			continue
		}
		kept = append(kept, txID)
	}
	s.transactionOrder = kept
}

// Account looks up one account by id.
func (s *Store) Account(id string) (domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	return a, ok
}

// Accounts returns the accounts in insertion order.
func (s *Store) Accounts() []domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Account, 0, len(s.accountOrder))
	for _, id := range s.accountOrder {
		out = append(out, s.accounts[id])
	}
	return out
}

// ReplaceTransactions swaps the transaction collection for the server's.
func (s *Store) ReplaceTransactions(txs []domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = make(map[string]domain.Transaction, len(txs))
	s.transactionOrder = s.transactionOrder[:0]
	for _, tx := range txs {
		s.transactions[tx.ID] = tx
		s.transactionOrder = append(s.transactionOrder, tx.ID)
	}
}

// UpsertTransaction patches one transaction after a create or edit.
func (s *Store) UpsertTransaction(tx domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[tx.ID]; !ok {
		s.transactionOrder = append(s.transactionOrder, tx.ID)
	}
	s.transactions[tx.ID] = tx
}

// RemoveTransaction drops one transaction.
func (s *Store) RemoveTransaction(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[id]; !ok {
		return
	}
	delete(s.transactions, id)
	s.transactionOrder = removeID(s.transactionOrder, id)
}

// Transactions returns the transactions in insertion order.
func (s *Store) Transactions() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Transaction, 0, len(s.transactionOrder))
	for _, id := range s.transactionOrder {
		out = append(out, s.transactions[id])
	}
	return out
}

// ReplaceCategories swaps the category collection for the server's.
func (s *Store) ReplaceCategories(categories []domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = make(map[string]domain.Category, len(categories))
	s.categoryOrder = s.categoryOrder[:0]
	for _, c := range categories {
		s.categories[c.ID] = c
		s.categoryOrder = append(s.categoryOrder, c.ID)
	}
}

// UpsertCategory patches one category after a create or edit.
func (s *Store) UpsertCategory(c domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[c.ID]; !ok {
		s.categoryOrder = append(s.categoryOrder, c.ID)
	}
	s.categories[c.ID] = c
}

// RemoveCategory drops one category. Transactions keep their dangling
// reference and fall back to "Uncategorized" in views.
func (s *Store) RemoveCategory(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return
	}
	delete(s.categories, id)
	s.categoryOrder = removeID(s.categoryOrder, id)
}

// Category looks up one category by id.
func (s *Store) Category(id string) (domain.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	return c, ok
}

// Categories returns the categories in insertion order.
func (s *Store) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, 0, len(s.categoryOrder))
	for _, id := range s.categoryOrder {
		out = append(out, s.categories[id])
	}
	return out
}

// ReplaceBudgets swaps the budget collection for the server's.
func (s *Store) ReplaceBudgets(budgets []domain.Budget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budgets = make(map[string]domain.Budget, len(budgets))
	s.budgetOrder = s.budgetOrder[:0]
	for _, b := range budgets {
		s.budgets[b.ID] = b
		s.budgetOrder = append(s.budgetOrder, b.ID)
	}
}

// UpsertBudget patches one budget after a create or edit.
func (s *Store) UpsertBudget(b domain.Budget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.budgets[b.ID]; !ok {
		s.budgetOrder = append(s.budgetOrder, b.ID)
	}
	s.budgets[b.ID] = b
}

// RemoveBudget drops one budget.
func (s *Store) RemoveBudget(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.budgets[id]; !ok {
		return
	}
	delete(s.budgets, id)
	s.budgetOrder = removeID(s.budgetOrder, id)
}

// Budgets returns the budgets in insertion order.
func (s *Store) Budgets() []domain.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Budget, 0, len(s.budgetOrder))
	for _, id := range s.budgetOrder {
		out = append(out, s.budgets[id])
	}
	return out
}

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
