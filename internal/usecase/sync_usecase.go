package usecase

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/iho/fintrack/internal/store"
)

// SyncUseCase refreshes the entity store's combined collections.
type SyncUseCase struct {
	accounts     *AccountUseCase
	transactions *TransactionUseCase
	store        *store.Store
}

// NewSyncUseCase creates a new SyncUseCase.
func NewSyncUseCase(accounts *AccountUseCase, transactions *TransactionUseCase, st *store.Store) *SyncUseCase {
	return &SyncUseCase{accounts: accounts, transactions: transactions, store: st}
}

// RefreshAll fetches accounts and transactions together. The loading
// indicator clears on every exit path, and a failed leg never discards
// what the other leg fetched: each fetch lands in the store on its own
// success.
func (uc *SyncUseCase) RefreshAll(ctx context.Context) error {
	uc.store.SetLoading(true)
	defer uc.store.SetLoading(false)

	var accErr, txErr error
	// Plain Group, not WithContext: one leg failing must not cancel the
	// other mid-fetch.
	var g errgroup.Group
	g.Go(func() error {
		_, accErr = uc.accounts.List(ctx)
		return nil
	})
	g.Go(func() error {
		_, txErr = uc.transactions.List(ctx)
		return nil
	})
	_ = g.Wait()

	return errors.Join(accErr, txErr)
}
