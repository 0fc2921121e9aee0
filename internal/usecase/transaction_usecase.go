package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/store"
	"github.com/iho/fintrack/internal/wire"
)

// TransactionUseCase handles transaction CRUD against the remote service
// and mirrors results into the entity store.
type TransactionUseCase struct {
	gw    Gateway
	store *store.Store
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(gw Gateway, st *store.Store) *TransactionUseCase {
	return &TransactionUseCase{gw: gw, store: st}
}

// TransactionInput represents input for creating or editing a
// transaction. CategoryID may be empty; AccountID may not.
type TransactionInput struct {
	Description string
	Amount      decimal.Decimal
	Type        domain.TransactionType
	Date        time.Time
	AccountID   string
	CategoryID  string
}

// List fetches all transactions and replaces the store's collection.
func (uc *TransactionUseCase) List(ctx context.Context) ([]domain.Transaction, error) {
	var out []wire.Transaction
	if err := uc.gw.Get(ctx, "/transactions", &out); err != nil {
		return nil, err
	}

	txs := make([]domain.Transaction, 0, len(out))
	for _, t := range out {
		txs = append(txs, t.ToDomain())
	}
	uc.store.ReplaceTransactions(txs)
	return txs, nil
}

// Create validates and creates a transaction, patching the store on
// success.
func (uc *TransactionUseCase) Create(ctx context.Context, input TransactionInput) (domain.Transaction, error) {
	if err := uc.validate(input); err != nil {
		return domain.Transaction{}, err
	}

	var out wire.Transaction
	if err := uc.gw.Post(ctx, "/transactions", uc.request(input), &out); err != nil {
		return domain.Transaction{}, err
	}

	tx := out.ToDomain()
	uc.store.UpsertTransaction(tx)
	return tx, nil
}

// Update validates and edits a transaction, patching the store on
// success.
func (uc *TransactionUseCase) Update(ctx context.Context, id string, input TransactionInput) (domain.Transaction, error) {
	if err := uc.validate(input); err != nil {
		return domain.Transaction{}, err
	}

	var out wire.Transaction
	if err := uc.gw.Put(ctx, "/transactions/"+id, uc.request(input), &out); err != nil {
		return domain.Transaction{}, err
	}

	tx := out.ToDomain()
	uc.store.UpsertTransaction(tx)
	return tx, nil
}

// Delete removes a transaction on the server, then from the store.
func (uc *TransactionUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.gw.Delete(ctx, "/transactions/"+id); err != nil {
		return err
	}
	uc.store.RemoveTransaction(id)
	return nil
}

func (uc *TransactionUseCase) validate(input TransactionInput) error {
	return domain.ValidateTransaction(domain.Transaction{
		Description: input.Description,
		Amount:      input.Amount,
		Type:        input.Type,
		Date:        input.Date,
		AccountID:   input.AccountID,
		CategoryID:  input.CategoryID,
	})
}

func (uc *TransactionUseCase) request(input TransactionInput) wire.TransactionRequest {
	return wire.TransactionRequest{
		Description: input.Description,
		Amount:      input.Amount,
		Category:    input.CategoryID,
		Account:     input.AccountID,
		Type:        string(input.Type),
		Date:        input.Date,
	}
}
