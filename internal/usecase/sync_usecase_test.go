package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/iho/fintrack/internal/store"
	"github.com/iho/fintrack/internal/usecase"
	"github.com/iho/fintrack/internal/usecase/mocks"
	"github.com/iho/fintrack/internal/wire"
)

func newSync(gw *mocks.MockGateway, st *store.Store) *usecase.SyncUseCase {
	return usecase.NewSyncUseCase(
		usecase.NewAccountUseCase(gw, st),
		usecase.NewTransactionUseCase(gw, st),
		st,
	)
}

func TestSyncUseCase_RefreshAll(t *testing.T) {
	gw := mocks.NewMockGateway()
	var mu sync.Mutex
	loadingDuringFetch := false
	st := store.New()
	gw.GetFunc = func(ctx context.Context, path string, out any) error {
		mu.Lock()
		loadingDuringFetch = loadingDuringFetch || st.Loading()
		mu.Unlock()
		switch {
		case strings.HasPrefix(path, "/accounts"):
			*out.(*[]wire.Account) = []wire.Account{{ID: "a1", Name: "Checking", Type: "checking", Currency: "USD"}}
		case strings.HasPrefix(path, "/transactions"):
			*out.(*[]wire.Transaction) = []wire.Transaction{{ID: "t1", Description: "Coffee", Type: "expense"}}
		}
		return nil
	}

	if err := newSync(gw, st).RefreshAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !loadingDuringFetch {
		t.Error("loading flag not raised while fetching")
	}
	if st.Loading() {
		t.Error("loading flag not cleared after refresh")
	}
	if len(st.Accounts()) != 1 || len(st.Transactions()) != 1 {
		t.Errorf("store not populated: %d accounts, %d transactions", len(st.Accounts()), len(st.Transactions()))
	}
}

func TestSyncUseCase_PartialFailureKeepsOtherLeg(t *testing.T) {
	sentinel := errors.New("transactions unavailable")
	gw := mocks.NewMockGateway()
	gw.GetFunc = func(ctx context.Context, path string, out any) error {
		if strings.HasPrefix(path, "/transactions") {
			return sentinel
		}
		*out.(*[]wire.Account) = []wire.Account{{ID: "a1", Name: "Checking", Type: "checking", Currency: "USD"}}
		return nil
	}
	st := store.New()

	err := newSync(gw, st).RefreshAll(context.Background())
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
	if len(st.Accounts()) != 1 {
		t.Error("successful leg's results must survive the other leg's failure")
	}
	if st.Loading() {
		t.Error("loading flag must clear on the failure path too")
	}
}
