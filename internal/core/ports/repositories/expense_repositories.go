package repositories

import (
	"context"

	"github.com/trackmyspend/expense_tracker_app/internal/core/domain"
)

// ExpenseReader defines read operations for expense data.
// Every method is scoped to a single user; implementations must never
// return rows owned by anyone else.
type ExpenseReader interface {
	// FindExpenseByID retrieves one expense owned by userID.
	// Returns apperrors.ErrNotFound when no such row exists for that owner.
	FindExpenseByID(ctx context.Context, expenseID string, userID string) (*domain.ExpenseEntry, error)

	// ListExpenses retrieves the user's expenses matching filter, sorted by
	// date descending with insertion order breaking ties. A limit <= 0 fetches
	// the entire ledger; otherwise cursor pagination applies and the second
	// return value carries the token for the next page, nil on the last one.
	ListExpenses(ctx context.Context, userID string, filter domain.ExpenseFilter, limit int, nextToken *string) ([]domain.ExpenseEntry, *string, error)
}

// ExpenseWriter defines write operations for expense data.
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.ExpenseEntry) error

	// UpdateExpense persists the full merged record, keyed by ExpenseID and UserID.
	UpdateExpense(ctx context.Context, expense domain.ExpenseEntry) error

	// DeleteExpense removes the expense owned by userID (hard delete).
	DeleteExpense(ctx context.Context, expenseID string, userID string) error
}

// ExpenseAggregator defines on-demand aggregate computation over a user's ledger.
type ExpenseAggregator interface {
	// SumExpenseTotals computes income/expense totals and the row count in one pass.
	SumExpenseTotals(ctx context.Context, userID string) (*domain.ExpenseStats, error)

	// SumByCategory groups the user's entries by exact category string,
	// sorted by total descending, then category ascending.
	SumByCategory(ctx context.Context, userID string) ([]domain.CategoryTotal, error)
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
	ExpenseAggregator
}
