package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/adapter/http/middleware"
	"github.com/iho/fintrack/internal/adapter/repository/memory"
	"github.com/iho/fintrack/internal/aggregate"
	"github.com/iho/fintrack/internal/wire"
)

// ReportHandler serves the server-side report rollup. It runs the same
// aggregation the client derives locally, over the owner's full ledger.
type ReportHandler struct {
	transactions *memory.TransactionRepository
	accounts     *memory.AccountRepository
	categories   *memory.CategoryRepository
	trendMonths  int
	recentLimit  int
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(
	transactions *memory.TransactionRepository,
	accounts *memory.AccountRepository,
	categories *memory.CategoryRepository,
	trendMonths, recentLimit int,
) *ReportHandler {
	return &ReportHandler{
		transactions: transactions,
		accounts:     accounts,
		categories:   categories,
		trendMonths:  trendMonths,
		recentLimit:  recentLimit,
	}
}

// Summary returns totals, the monthly trend, the expense breakdown and
// the most recent transactions.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.UserID(r.Context())

	months := parseIntQuery(r, "months", h.trendMonths)
	limit := parseIntQuery(r, "limit", h.recentLimit)

	// Re-resolve category references so renames propagate and deleted
	// categories fall into the uncategorized bucket.
	txs := h.transactions.List(owner)
	for i, tx := range txs {
		if tx.CategoryID == "" {
			continue
		}
		category, err := h.categories.Get(owner, tx.CategoryID)
		if err != nil {
			txs[i].CategoryID = ""
			txs[i].CategoryName = ""
			continue
		}
		txs[i].CategoryName = category.Name
	}

	report := aggregate.ReportSummary(txs, time.Now(), months, limit)

	out := wire.ReportSummary{
		TotalIncome:       report.TotalIncome,
		TotalExpense:      report.TotalExpense,
		Trend:             make([]wire.TrendPoint, 0, len(report.Trend)),
		CategoryBreakdown: make([]wire.CategoryValue, 0, len(report.CategoryBreakdown)),
		Recent:            make([]wire.Transaction, 0, len(report.Recent)),
	}
	for _, p := range report.Trend {
		out.Trend = append(out.Trend, wire.TrendPoint{Month: p.Month, Income: p.Income, Expense: p.Expense})
	}
	for _, c := range report.CategoryBreakdown {
		out.CategoryBreakdown = append(out.CategoryBreakdown, wire.CategoryValue{Name: c.Name, Value: c.Value})
	}
	for _, tx := range report.Recent {
		balance := decimal.Zero
		if account, err := h.accounts.Get(owner, tx.AccountID); err == nil {
			balance = account.BaseBalance
		}
		out.Recent = append(out.Recent, wire.FromTransaction(tx, balance))
	}

	writeJSON(w, http.StatusOK, out)
}
