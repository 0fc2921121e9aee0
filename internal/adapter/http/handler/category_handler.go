package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/fintrack/internal/adapter/http/middleware"
	"github.com/iho/fintrack/internal/adapter/repository/memory"
	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/wire"
)

// CategoryHandler handles category CRUD.
type CategoryHandler struct {
	categories *memory.CategoryRepository
	idGen      IDGenerator
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories *memory.CategoryRepository, idGen IDGenerator) *CategoryHandler {
	return &CategoryHandler{categories: categories, idGen: idGen}
}

// List lists the caller's categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.UserID(r.Context())

	categories := h.categories.List(owner)
	out := make([]wire.Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, wire.FromCategory(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create creates a category.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.UserID(r.Context())

	var req wire.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category := domain.Category{
		ID:   h.idGen.Generate(),
		Name: req.Name,
		Kind: domain.CategoryKind(req.Type),
	}
	if err := domain.ValidateCategory(category); err != nil {
		writeDomainError(w, err)
		return
	}

	h.categories.Create(owner, category)
	writeJSON(w, http.StatusCreated, wire.FromCategory(category))
}

// Update edits a category.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.UserID(r.Context())
	id := chi.URLParam(r, "id")

	var req wire.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category := domain.Category{
		ID:   id,
		Name: req.Name,
		Kind: domain.CategoryKind(req.Type),
	}
	if err := domain.ValidateCategory(category); err != nil {
		writeDomainError(w, err)
		return
	}

	if err := h.categories.Update(owner, category); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wire.FromCategory(category))
}

// Delete removes a category. Transactions pointing at it are left in
// place with a dangling reference.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.UserID(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.categories.Delete(owner, id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "category deleted"})
}
