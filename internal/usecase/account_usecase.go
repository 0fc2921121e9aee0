package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/aggregate"
	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/store"
	"github.com/iho/fintrack/internal/wire"
)

// AccountUseCase handles account CRUD against the remote service and
// mirrors results into the entity store.
type AccountUseCase struct {
	gw    Gateway
	store *store.Store
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(gw Gateway, st *store.Store) *AccountUseCase {
	return &AccountUseCase{gw: gw, store: st}
}

// AccountInput represents input for creating or editing an account.
// Balance is the opening balance; on edit it overwrites the stored base
// balance and never becomes a ledger entry.
type AccountInput struct {
	Name     string
	Type     domain.AccountType
	Currency string
	Balance  decimal.Decimal
}

// List fetches all accounts and replaces the store's collection.
func (uc *AccountUseCase) List(ctx context.Context) ([]domain.Account, error) {
	var out []wire.Account
	if err := uc.gw.Get(ctx, "/accounts", &out); err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(out))
	for _, a := range out {
		accounts = append(accounts, a.ToDomain())
	}
	uc.store.ReplaceAccounts(accounts)
	return accounts, nil
}

// Create validates and creates an account, patching the store on success.
func (uc *AccountUseCase) Create(ctx context.Context, input AccountInput) (domain.Account, error) {
	candidate := domain.Account{
		Name:        input.Name,
		Type:        input.Type,
		Currency:    input.Currency,
		BaseBalance: input.Balance,
	}
	if err := domain.ValidateAccount(candidate); err != nil {
		return domain.Account{}, err
	}

	var out wire.Account
	body := wire.AccountRequest{
		Name:     input.Name,
		Type:     string(input.Type),
		Currency: input.Currency,
		Balance:  input.Balance,
	}
	if err := uc.gw.Post(ctx, "/accounts", body, &out); err != nil {
		return domain.Account{}, err
	}

	account := out.ToDomain()
	uc.store.UpsertAccount(account)
	return account, nil
}

// Update validates and edits an account, patching the store on success.
func (uc *AccountUseCase) Update(ctx context.Context, id string, input AccountInput) (domain.Account, error) {
	candidate := domain.Account{
		ID:          id,
		Name:        input.Name,
		Type:        input.Type,
		Currency:    input.Currency,
		BaseBalance: input.Balance,
	}
	if err := domain.ValidateAccount(candidate); err != nil {
		return domain.Account{}, err
	}

	var out wire.Account
	body := wire.AccountRequest{
		Name:     input.Name,
		Type:     string(input.Type),
		Currency: input.Currency,
		Balance:  input.Balance,
	}
	if err := uc.gw.Put(ctx, "/accounts/"+id, body, &out); err != nil {
		return domain.Account{}, err
	}

	account := out.ToDomain()
	uc.store.UpsertAccount(account)
	return account, nil
}

// Delete removes an account on the server, then drops it and its
// transactions from the store.
func (uc *AccountUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.gw.Delete(ctx, "/accounts/"+id); err != nil {
		return err
	}
	uc.store.RemoveAccount(id)
	return nil
}

// BalanceLine pairs an account with its derived balance.
type BalanceLine struct {
	Account domain.Account
	Balance decimal.Decimal
}

// Balances derives every account's balance from the current store
// snapshot. Computed fresh on each call, never cached.
func (uc *AccountUseCase) Balances() []BalanceLine {
	accounts := uc.store.Accounts()
	txs := uc.store.Transactions()

	lines := make([]BalanceLine, 0, len(accounts))
	for _, a := range accounts {
		lines = append(lines, BalanceLine{
			Account: a,
			Balance: aggregate.AccountBalance(a, txs),
		})
	}
	return lines
}
