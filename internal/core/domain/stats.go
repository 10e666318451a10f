package domain

import "github.com/shopspring/decimal"

// CategoryTotal represents one row of the per-category breakdown:
// the combined amount and number of entries carrying that category label.
// Grouping is exact-string; categories are not case-normalized.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

// ExpenseStats summarizes a user's full ledger. It is recomputed from the
// current entries on every call, never maintained incrementally.
type ExpenseStats struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpense      decimal.Decimal `json:"totalExpense"`
	Balance           decimal.Decimal `json:"balance"` // TotalIncome - TotalExpense, may be negative
	Count             int64           `json:"count"`
	CategoryBreakdown []CategoryTotal `json:"categoryBreakdown"` // Sorted by total desc, category asc
}
