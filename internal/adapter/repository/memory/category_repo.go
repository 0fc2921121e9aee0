package memory

import (
	"sync"

	"github.com/iho/fintrack/internal/domain"
)

type categoryRecord struct {
	owner    string
	category domain.Category
}

// CategoryRepository stores categories in insertion order per owner.
type CategoryRepository struct {
	mu      sync.RWMutex
	records map[string]categoryRecord
	order   []string
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{records: make(map[string]categoryRecord)}
}

// Create stores a new category for the owner.
func (r *CategoryRepository) Create(owner string, c domain.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[c.ID] = categoryRecord{owner: owner, category: c}
	r.order = append(r.order, c.ID)
}

// Update replaces the owner's category.
func (r *CategoryRepository) Update(owner string, c domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[c.ID]
	if !ok || rec.owner != owner {
		return domain.ErrCategoryNotFound
	}
	r.records[c.ID] = categoryRecord{owner: owner, category: c}
	return nil
}

// Delete removes the owner's category. Transactions keep their now
// dangling reference; views fall back to the uncategorized bucket.
func (r *CategoryRepository) Delete(owner, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok || rec.owner != owner {
		return domain.ErrCategoryNotFound
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

// Get returns the owner's category by id.
func (r *CategoryRepository) Get(owner, id string) (domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok || rec.owner != owner {
		return domain.Category{}, domain.ErrCategoryNotFound
	}
	return rec.category, nil
}

// List returns the owner's categories in insertion order.
func (r *CategoryRepository) List(owner string) []domain.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Category, 0)
	for _, id := range r.order {
		if rec := r.records[id]; rec.owner == owner {
			out = append(out, rec.category)
		}
	}
	return out
}
