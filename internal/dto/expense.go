package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/trackmyspend/expense_tracker_app/internal/core/domain"
)

// CreateExpenseRequest defines the data needed to record a new expense.
// Required-ness is enforced by the service so that every missing field can be
// reported in a single validation error, not just the first one the binder hits.
type CreateExpenseRequest struct {
	Title    string           `json:"title"`
	Amount   *decimal.Decimal `json:"amount"` // Pointer distinguishes "absent" from zero
	Type     string           `json:"type"`
	Category string           `json:"category"`
	Date     *time.Time       `json:"date"` // Optional, defaults to now
}

// UpdateExpenseRequest defines the data allowed for a partial update.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateExpenseRequest struct {
	Title    *string          `json:"title"`
	Amount   *decimal.Decimal `json:"amount"`
	Type     *string          `json:"type"`
	Category *string          `json:"category"`
	Date     *time.Time       `json:"date"`
}

// ListExpensesParams defines query parameters for listing expenses.
// An unrecognized type value is ignored rather than rejected.
type ListExpensesParams struct {
	Type      string     `form:"type"`
	Category  string     `form:"category"`
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02"`
	Limit     int        `form:"limit"` // <= 0 returns the full ledger
	NextToken *string    `form:"nextToken"`
}

// ToExpenseFilter converts the query parameters into a repository filter,
// dropping any type value outside the accepted enumeration.
func (p ListExpensesParams) ToExpenseFilter() domain.ExpenseFilter {
	filter := domain.ExpenseFilter{
		Category: p.Category,
		DateFrom: p.StartDate,
		DateTo:   p.EndDate,
	}
	if t := domain.ExpenseType(p.Type); t.IsValid() {
		filter.Type = t
	}
	return filter
}

// ExpenseResponse defines the data returned for a single expense.
type ExpenseResponse struct {
	ExpenseID     string          `json:"expenseID"`
	Title         string          `json:"title"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToExpenseResponse converts a domain.ExpenseEntry to its response DTO.
func ToExpenseResponse(e *domain.ExpenseEntry) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		Title:         e.Title,
		Amount:        e.Amount,
		Type:          string(e.Type),
		Category:      e.Category,
		Date:          e.Date,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ListExpensesResponse wraps a page (or the entirety) of a user's ledger.
type ListExpensesResponse struct {
	Count     int               `json:"count"`
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListExpensesResponse converts a slice of entries plus pagination token.
func ToListExpensesResponse(entries []domain.ExpenseEntry, nextToken *string) ListExpensesResponse {
	res := ListExpensesResponse{
		Count:     len(entries),
		Expenses:  make([]ExpenseResponse, len(entries)),
		NextToken: nextToken,
	}
	for i := range entries {
		res.Expenses[i] = ToExpenseResponse(&entries[i])
	}
	return res
}

// CategoryTotalResponse is one row of the category breakdown.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

// ExpenseStatsResponse defines the statistics summary for a user's ledger.
type ExpenseStatsResponse struct {
	TotalIncome       decimal.Decimal         `json:"totalIncome"`
	TotalExpense      decimal.Decimal         `json:"totalExpense"`
	Balance           decimal.Decimal         `json:"balance"`
	Count             int64                   `json:"count"`
	CategoryBreakdown []CategoryTotalResponse `json:"categoryBreakdown"`
}

// ToExpenseStatsResponse converts domain.ExpenseStats to its response DTO.
func ToExpenseStatsResponse(stats *domain.ExpenseStats) ExpenseStatsResponse {
	res := ExpenseStatsResponse{
		TotalIncome:       stats.TotalIncome,
		TotalExpense:      stats.TotalExpense,
		Balance:           stats.Balance,
		Count:             stats.Count,
		CategoryBreakdown: make([]CategoryTotalResponse, len(stats.CategoryBreakdown)),
	}
	for i, ct := range stats.CategoryBreakdown {
		res.CategoryBreakdown[i] = CategoryTotalResponse{
			Category: ct.Category,
			Total:    ct.Total,
			Count:    ct.Count,
		}
	}
	return res
}
