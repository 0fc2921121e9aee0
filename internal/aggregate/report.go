package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// TrendPoint is one month bucket of the trailing trend series.
type TrendPoint struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// CategoryValue is one expense bucket of the category breakdown.
type CategoryValue struct {
	Name  string
	Value decimal.Decimal
}

// Report is the full report rollup.
type Report struct {
	TotalIncome       decimal.Decimal
	TotalExpense      decimal.Decimal
	Trend             []TrendPoint
	CategoryBreakdown []CategoryValue
	Recent            []domain.Transaction
}

// ReportSummary rolls up the transaction set:
//
//   - totals by type over the whole set;
//   - a trend of exactly windowMonths chronological buckets ending at
//     now's month, zero-filled for months with no activity;
//   - expense totals grouped by category name, absent categories in the
//     "Uncategorized" bucket, in first-appearance order;
//   - the recentLimit most recent transactions by date descending, ties
//     kept in input order.
func ReportSummary(txs []domain.Transaction, now time.Time, windowMonths, recentLimit int) Report {
	report := Report{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	report.Trend = make([]TrendPoint, 0, windowMonths)
	trendIndex := make(map[string]int, windowMonths)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := windowMonths - 1; i >= 0; i-- {
		month := monthStart.AddDate(0, -i, 0).Format(domain.MonthLayout)
		trendIndex[month] = len(report.Trend)
		report.Trend = append(report.Trend, TrendPoint{
			Month:   month,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		})
	}

	breakdownIndex := make(map[string]int)

	for _, tx := range txs {
		switch tx.Type {
		case domain.TransactionIncome:
			report.TotalIncome = report.TotalIncome.Add(tx.Amount)
		case domain.TransactionExpense:
			report.TotalExpense = report.TotalExpense.Add(tx.Amount)
		}

		if i, ok := trendIndex[tx.Month()]; ok {
			switch tx.Type {
			case domain.TransactionIncome:
				report.Trend[i].Income = report.Trend[i].Income.Add(tx.Amount)
			case domain.TransactionExpense:
				report.Trend[i].Expense = report.Trend[i].Expense.Add(tx.Amount)
			}
		}

		if tx.Type == domain.TransactionExpense {
			name := tx.Category()
			i, ok := breakdownIndex[name]
			if !ok {
				i = len(report.CategoryBreakdown)
				breakdownIndex[name] = i
				report.CategoryBreakdown = append(report.CategoryBreakdown, CategoryValue{
					Name:  name,
					Value: decimal.Zero,
				})
			}
			report.CategoryBreakdown[i].Value = report.CategoryBreakdown[i].Value.Add(tx.Amount)
		}
	}

	report.Recent = Recent(txs, recentLimit)
	return report
}

// Recent returns the n most recent transactions by date descending.
// Equal dates keep their input order, never an arbitrary reshuffle.
func Recent(txs []domain.Transaction, n int) []domain.Transaction {
	recent := make([]domain.Transaction, len(txs))
	copy(recent, txs)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if n >= 0 && n < len(recent) {
		recent = recent[:n]
	}
	return recent
}
