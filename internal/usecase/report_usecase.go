package usecase

import (
	"context"
	"time"

	"github.com/iho/fintrack/internal/aggregate"
	"github.com/iho/fintrack/internal/store"
	"github.com/iho/fintrack/internal/wire"
)

// ReportUseCase derives report rollups. Local summaries are computed
// from the store snapshot; RemoteSummary asks the server for its own
// rollup of the same shape.
type ReportUseCase struct {
	gw          Gateway
	store       *store.Store
	trendMonths int
	recentLimit int
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(gw Gateway, st *store.Store, trendMonths, recentLimit int) *ReportUseCase {
	if trendMonths <= 0 {
		trendMonths = 6
	}
	if recentLimit <= 0 {
		recentLimit = 10
	}
	return &ReportUseCase{gw: gw, store: st, trendMonths: trendMonths, recentLimit: recentLimit}
}

// Summary computes the report rollup over the current store snapshot,
// anchored at now.
func (uc *ReportUseCase) Summary(now time.Time) aggregate.Report {
	return aggregate.ReportSummary(uc.store.Transactions(), now, uc.trendMonths, uc.recentLimit)
}

// RemoteSummary fetches the server-side rollup.
func (uc *ReportUseCase) RemoteSummary(ctx context.Context) (wire.ReportSummary, error) {
	var out wire.ReportSummary
	if err := uc.gw.Get(ctx, "/reports/summary", &out); err != nil {
		return wire.ReportSummary{}, err
	}
	return out, nil
}
