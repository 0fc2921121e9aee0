package usecase

import (
	"context"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/store"
	"github.com/iho/fintrack/internal/wire"
)

// CategoryUseCase handles category CRUD against the remote service and
// mirrors results into the entity store.
type CategoryUseCase struct {
	gw    Gateway
	store *store.Store
}

// NewCategoryUseCase creates a new CategoryUseCase.
func NewCategoryUseCase(gw Gateway, st *store.Store) *CategoryUseCase {
	return &CategoryUseCase{gw: gw, store: st}
}

// CategoryInput represents input for creating or editing a category.
type CategoryInput struct {
	Name string
	Kind domain.CategoryKind
}

// List fetches all categories and replaces the store's collection.
func (uc *CategoryUseCase) List(ctx context.Context) ([]domain.Category, error) {
	var out []wire.Category
	if err := uc.gw.Get(ctx, "/categories", &out); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(out))
	for _, c := range out {
		categories = append(categories, c.ToDomain())
	}
	uc.store.ReplaceCategories(categories)
	return categories, nil
}

// Create validates and creates a category, patching the store on success.
func (uc *CategoryUseCase) Create(ctx context.Context, input CategoryInput) (domain.Category, error) {
	if err := domain.ValidateCategory(domain.Category{Name: input.Name, Kind: input.Kind}); err != nil {
		return domain.Category{}, err
	}

	var out wire.Category
	body := wire.CategoryRequest{Name: input.Name, Type: string(input.Kind)}
	if err := uc.gw.Post(ctx, "/categories", body, &out); err != nil {
		return domain.Category{}, err
	}

	category := out.ToDomain()
	uc.store.UpsertCategory(category)
	return category, nil
}

// Update validates and edits a category, patching the store on success.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, input CategoryInput) (domain.Category, error) {
	if err := domain.ValidateCategory(domain.Category{ID: id, Name: input.Name, Kind: input.Kind}); err != nil {
		return domain.Category{}, err
	}

	var out wire.Category
	body := wire.CategoryRequest{Name: input.Name, Type: string(input.Kind)}
	if err := uc.gw.Put(ctx, "/categories/"+id, body, &out); err != nil {
		return domain.Category{}, err
	}

	category := out.ToDomain()
	uc.store.UpsertCategory(category)
	return category, nil
}

// Delete removes a category on the server, then from the store.
// Transactions referencing it keep their dangling reference and render
// as "Uncategorized".
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.gw.Delete(ctx, "/categories/"+id); err != nil {
		return err
	}
	uc.store.RemoveCategory(id)
	return nil
}
