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

// TransactionHandler handles transaction CRUD.
type TransactionHandler struct {
	transactions *memory.TransactionRepository
	accounts     *memory.AccountRepository
	categories   *memory.CategoryRepository
	idGen        IDGenerator
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(
	transactions *memory.TransactionRepository,
	accounts *memory.AccountRepository,
	categories *memory.CategoryRepository,
	idGen IDGenerator,
) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
		accounts:     accounts,
		categories:   categories,
		idGen:        idGen,
	}
}

// List lists the caller's transactions with embedded references.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.UserID(r.Context())

	txs := h.transactions.List(owner)
	out := make([]wire.Transaction, 0, len(txs))
	for _, tx := range txs {
		out = append(out, h.toWire(owner, tx))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create creates a transaction; the account must exist.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.UserID(r.Context())

	tx, ok := h.decode(w, r, owner)
	if !ok {
		return
	}
	tx.ID = h.idGen.Generate()

	h.transactions.Create(owner, tx)
	writeJSON(w, http.StatusCreated, h.toWire(owner, tx))
}

// Update edits a transaction.
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.UserID(r.Context())
	id := chi.URLParam(r, "id")

	tx, ok := h.decode(w, r, owner)
	if !ok {
		return
	}
	tx.ID = id

	if err := h.transactions.Update(owner, tx); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toWire(owner, tx))
}

// Delete removes a transaction.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.UserID(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.transactions.Delete(owner, id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "transaction deleted"})
}

// decode parses and validates the request body, resolving the account
// and optional category references.
func (h *TransactionHandler) decode(w http.ResponseWriter, r *http.Request, owner string) (domain.Transaction, bool) {
	var req wire.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return domain.Transaction{}, false
	}

	account, err := h.accounts.Get(owner, req.Account)
	if err != nil {
		writeDomainError(w, err)
		return domain.Transaction{}, false
	}

	tx := domain.Transaction{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        domain.TransactionType(req.Type),
		Date:        req.Date,
		AccountID:   account.ID,
		AccountName: account.Name,
	}
	if req.Category != "" {
		category, err := h.categories.Get(owner, req.Category)
		if err != nil {
			writeDomainError(w, err)
			return domain.Transaction{}, false
		}
		tx.CategoryID = category.ID
		tx.CategoryName = category.Name
	}

	if err := domain.ValidateTransaction(tx); err != nil {
		writeDomainError(w, err)
		return domain.Transaction{}, false
	}
	return tx, true
}

// toWire embeds the current account and category state. A reference to a
// since-deleted category is dropped so clients see null.
func (h *TransactionHandler) toWire(owner string, tx domain.Transaction) wire.Transaction {
	out := wire.Transaction{
		ID:          tx.ID,
		Description: tx.Description,
		Amount:      tx.Amount,
		Type:        string(tx.Type),
		Date:        tx.Date,
	}
	if account, err := h.accounts.Get(owner, tx.AccountID); err == nil {
		out.Account = &wire.AccountRef{ID: account.ID, Name: account.Name, Balance: account.BaseBalance}
	}
	if tx.CategoryID != "" {
		if category, err := h.categories.Get(owner, tx.CategoryID); err == nil {
			out.Category = &wire.CategoryRef{ID: category.ID, Name: category.Name}
		}
	}
	return out
}
