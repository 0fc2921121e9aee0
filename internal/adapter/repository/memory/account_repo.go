package memory

import (
	"sync"
	"time"

	"github.com/iho/fintrack/internal/domain"
)

type accountRecord struct {
	owner   string
	account domain.Account
}

// AccountRepository stores accounts in insertion order per owner.
type AccountRepository struct {
	mu      sync.RWMutex
	records map[string]accountRecord
	order   []string
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{records: make(map[string]accountRecord)}
}

// Create stores a new account for the owner.
func (r *AccountRepository) Create(owner string, a domain.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	r.records[a.ID] = accountRecord{owner: owner, account: a}
	r.order = append(r.order, a.ID)
}

// Update replaces the owner's account. The stored balance is overwritten
// with the submitted one; it is an opening balance, not a ledger sum.
func (r *AccountRepository) Update(owner string, a domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[a.ID]
	if !ok || rec.owner != owner {
		return domain.ErrAccountNotFound
	}
	a.CreatedAt = rec.account.CreatedAt
	a.UpdatedAt = time.Now()
	r.records[a.ID] = accountRecord{owner: owner, account: a}
	return nil
}

// Delete removes the owner's account.
func (r *AccountRepository) Delete(owner, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok || rec.owner != owner {
		return domain.ErrAccountNotFound
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

// Get returns the owner's account by id.
func (r *AccountRepository) Get(owner, id string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok || rec.owner != owner {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	return rec.account, nil
}

// List returns the owner's accounts in insertion order.
func (r *AccountRepository) List(owner string) []domain.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Account, 0)
	for _, id := range r.order {
		if rec := r.records[id]; rec.owner == owner {
			out = append(out, rec.account)
		}
	}
	return out
}
