package domain

import "github.com/shopspring/decimal"

// MonthLayout is the time layout for YYYY-MM month keys.
const MonthLayout = "2006-01"

// Budget caps spending for one (category, month) pair.
//
// The core does not enforce uniqueness per pair; callers treat duplicate
// budgets for the same pair as additive rows.
type Budget struct {
	ID           string
	CategoryID   string
	CategoryName string
	Month        string
	Limit        decimal.Decimal
}
