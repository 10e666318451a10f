package services

import (
	"context"

	"github.com/trackmyspend/expense_tracker_app/internal/core/domain"
	"github.com/trackmyspend/expense_tracker_app/internal/dto"
)

// ExpenseReaderSvc defines read operations over a user's ledger.
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves one expense. Ownership mismatch surfaces as
	// apperrors.ErrNotFound; a malformed id as apperrors.ErrInvalidID.
	GetExpenseByID(ctx context.Context, userID string, expenseID string) (*domain.ExpenseEntry, error)

	// ListExpenses retrieves the user's expenses matching the given filters,
	// newest first. The returned token pages through large ledgers.
	ListExpenses(ctx context.Context, userID string, params dto.ListExpensesParams) ([]domain.ExpenseEntry, *string, error)
}

// ExpenseWriterSvc defines mutation operations over a user's ledger.
type ExpenseWriterSvc interface {
	// CreateExpense validates and records a new expense.
	CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.ExpenseEntry, error)

	// UpdateExpense applies a partial update to an owned expense.
	UpdateExpense(ctx context.Context, userID string, expenseID string, req dto.UpdateExpenseRequest) (*domain.ExpenseEntry, error)

	// DeleteExpense hard-deletes an owned expense, returning its prior snapshot.
	DeleteExpense(ctx context.Context, userID string, expenseID string) (*domain.ExpenseEntry, error)
}

// ExpenseStatsSvc defines on-demand statistics over a user's ledger.
type ExpenseStatsSvc interface {
	// GetExpenseStats recomputes totals, balance, count and the category
	// breakdown from the current entries. An empty ledger yields zeroes.
	GetExpenseStats(ctx context.Context, userID string) (*domain.ExpenseStats, error)
}

// ExpenseSvcFacade combines all expense-related service interfaces.
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
	ExpenseStatsSvc
}
