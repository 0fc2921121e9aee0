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

// AccountHandler handles account CRUD.
type AccountHandler struct {
	accounts     *memory.AccountRepository
	transactions *memory.TransactionRepository
	idGen        IDGenerator
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accounts *memory.AccountRepository, transactions *memory.TransactionRepository, idGen IDGenerator) *AccountHandler {
	return &AccountHandler{accounts: accounts, transactions: transactions, idGen: idGen}
}

// List lists the caller's accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.UserID(r.Context())

	accounts := h.accounts.List(owner)
	out := make([]wire.Account, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, wire.FromAccount(a))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create creates an account. The submitted balance is stored verbatim as
// the opening balance.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.UserID(r.Context())

	var req wire.AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account := domain.Account{
		ID:          h.idGen.Generate(),
		Name:        req.Name,
		Type:        domain.AccountType(req.Type),
		Currency:    req.Currency,
		BaseBalance: req.Balance,
	}
	if err := domain.ValidateAccount(account); err != nil {
		writeDomainError(w, err)
		return
	}

	h.accounts.Create(owner, account)
	writeJSON(w, http.StatusCreated, wire.FromAccount(account))
}

// Update edits an account.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.UserID(r.Context())
	id := chi.URLParam(r, "id")

	var req wire.AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account := domain.Account{
		ID:          id,
		Name:        req.Name,
		Type:        domain.AccountType(req.Type),
		Currency:    req.Currency,
		BaseBalance: req.Balance,
	}
	if err := domain.ValidateAccount(account); err != nil {
		writeDomainError(w, err)
		return
	}

	if err := h.accounts.Update(owner, account); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wire.FromAccount(account))
}

// Delete removes an account and every transaction bound to it.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.UserID(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.accounts.Delete(owner, id); err != nil {
		writeDomainError(w, err)
		return
	}
	h.transactions.DeleteByAccount(owner, id)
	writeJSON(w, http.StatusOK, map[string]string{"message": "account deleted"})
}
