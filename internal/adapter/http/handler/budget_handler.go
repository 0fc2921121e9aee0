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

// BudgetHandler handles budget CRUD.
type BudgetHandler struct {
	budgets    *memory.BudgetRepository
	categories *memory.CategoryRepository
	idGen      IDGenerator
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgets *memory.BudgetRepository, categories *memory.CategoryRepository, idGen IDGenerator) *BudgetHandler {
	return &BudgetHandler{budgets: budgets, categories: categories, idGen: idGen}
}

// List lists the caller's budgets, filtered by the month query when
// present.
func (h *BudgetHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.UserID(r.Context())

	month := r.URL.Query().Get("month")
	if month != "" {
		if err := domain.ValidateMonth(month); err != nil {
			writeDomainError(w, err)
			return
		}
	}

	budgets := h.budgets.ListByMonth(owner, month)
	out := make([]wire.Budget, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, wire.FromBudget(b))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create creates a budget; the category must exist.
func (h *BudgetHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.UserID(r.Context())

	budget, ok := h.decode(w, r, owner)
	if !ok {
		return
	}
	budget.ID = h.idGen.Generate()

	h.budgets.Create(owner, budget)
	writeJSON(w, http.StatusCreated, wire.FromBudget(budget))
}

// Update edits a budget.
func (h *BudgetHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.UserID(r.Context())
	id := chi.URLParam(r, "id")

	budget, ok := h.decode(w, r, owner)
	if !ok {
		return
	}
	budget.ID = id

	if err := h.budgets.Update(owner, budget); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wire.FromBudget(budget))
}

// Delete removes a budget.
func (h *BudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.UserID(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.budgets.Delete(owner, id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "budget deleted"})
}

func (h *BudgetHandler) decode(w http.ResponseWriter, r *http.Request, owner string) (domain.Budget, bool) {
	var req wire.BudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return domain.Budget{}, false
	}

	category, err := h.categories.Get(owner, req.CategoryID)
	if err != nil {
		writeDomainError(w, err)
		return domain.Budget{}, false
	}

	budget := domain.Budget{
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Month:        req.Month,
		Limit:        req.Limit,
	}
	if err := domain.ValidateBudget(budget); err != nil {
		writeDomainError(w, err)
		return domain.Budget{}, false
	}
	return budget, true
}
