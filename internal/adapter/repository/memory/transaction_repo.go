package memory

import (
	"sync"

	"github.com/iho/fintrack/internal/domain"
)

type transactionRecord struct {
	owner string
	tx    domain.Transaction
}

// TransactionRepository stores transactions in insertion order per owner.
type TransactionRepository struct {
	mu      sync.RWMutex
	records map[string]transactionRecord
	order   []string
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{records: make(map[string]transactionRecord)}
}

// Create stores a new transaction for the owner.
func (r *TransactionRepository) Create(owner string, tx domain.Transaction) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[tx.ID] = transactionRecord{owner: owner, tx: tx}
	r.order = append(r.order, tx.ID)
}

// Update replaces the owner's transaction.
func (r *TransactionRepository) Update(owner string, tx domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[tx.ID]
	if !ok || rec.owner != owner {
		return domain.ErrTransactionNotFound
	}
	r.records[tx.ID] = transactionRecord{owner: owner, tx: tx}
	return nil
}

// Delete removes the owner's transaction.
func (r *TransactionRepository) Delete(owner, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok || rec.owner != owner {
		return domain.ErrTransactionNotFound
	}
	r.removeLocked(id)
	return nil
}

// DeleteByAccount removes every transaction of the owner bound to the
// account. Called when the account itself is deleted.
func (r *TransactionRepository) DeleteByAccount(owner, accountID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range append([]string(nil), r.order...) {
		rec := r.records[id]
		if rec.owner == owner && rec.tx.AccountID == accountID {
			r.removeLocked(id)
		}
	}
}

func (r *TransactionRepository) removeLocked(id string) {
	delete(r.records, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get returns the owner's transaction by id.
func (r *TransactionRepository) Get(owner, id string) (domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok || rec.owner != owner {
		return domain.Transaction{}, domain.ErrTransactionNotFound
	}
	return rec.tx, nil
}

// List returns the owner's transactions in insertion order.
func (r *TransactionRepository) List(owner string) []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Transaction, 0)
	for _, id := range r.order {
		if rec := r.records[id]; rec.owner == owner {
			out = append(out, rec.tx)
		}
	}
	return out
}
