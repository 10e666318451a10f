package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trackmyspend/expense_tracker_app/internal/apperrors"
	"github.com/trackmyspend/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/trackmyspend/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/trackmyspend/expense_tracker_app/internal/core/ports/services"
	"github.com/trackmyspend/expense_tracker_app/internal/dto"
)

// expenseServiceImpl implements the ExpenseSvcFacade interface. The service is
// stateless: every invocation validates, scopes to the given owner, and makes
// bounded round trips to the repository. No state survives between calls.
type expenseServiceImpl struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates the ledger service backed by the given repository.
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseServiceImpl{expenseRepo: repo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseServiceImpl)(nil)

// parseExpenseID rejects identifiers the store cannot address before any
// round trip is made.
func parseExpenseID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a valid expense ID", apperrors.ErrInvalidID, raw)
	}
	return id.String(), nil
}

func validateTitle(title string) (string, string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "title is required"
	}
	// Length bounds count characters, matching the VARCHAR column widths.
	if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		return "", fmt.Sprintf("title cannot exceed %d characters", domain.MaxTitleLength)
	}
	return title, ""
}

func validateCategory(category string) (string, string) {
	category = strings.TrimSpace(category)
	if category == "" {
		return "", "category is required"
	}
	if utf8.RuneCountInString(category) > domain.MaxCategoryLength {
		return "", fmt.Sprintf("category cannot exceed %d characters", domain.MaxCategoryLength)
	}
	return category, ""
}

func validateAmount(amount *decimal.Decimal) string {
	if amount == nil {
		return "amount is required"
	}
	if !amount.IsPositive() {
		return "amount must be greater than 0"
	}
	return ""
}

func validateType(t string) string {
	if t == "" {
		return "type is required"
	}
	if !domain.ExpenseType(t).IsValid() {
		return "type must be either Income or Expense"
	}
	return ""
}

// CreateExpense validates the input in full, then performs exactly one
// durable write. Every failing field is reported, not just the first.
func (s *expenseServiceImpl) CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.ExpenseEntry, error) {
	var fields []string

	title, msg := validateTitle(req.Title)
	if msg != "" {
		fields = append(fields, msg)
	}
	if msg := validateAmount(req.Amount); msg != "" {
		fields = append(fields, msg)
	}
	if msg := validateType(req.Type); msg != "" {
		fields = append(fields, msg)
	}
	category, msg := validateCategory(req.Category)
	if msg != "" {
		fields = append(fields, msg)
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields...)
	}

	now := time.Now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	expense := domain.ExpenseEntry{
		ExpenseID: uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Amount:    *req.Amount,
		Type:      domain.ExpenseType(req.Type),
		Category:  category,
		Date:      date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense",
			slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense created successfully",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("type", string(expense.Type)))
	return &expense, nil
}

// GetExpenseByID returns the expense when it exists and belongs to userID.
// A record owned by someone else yields ErrNotFound, never ErrForbidden, so
// existence is not leaked across owners.
func (s *expenseServiceImpl) GetExpenseByID(ctx context.Context, userID string, expenseID string) (*domain.ExpenseEntry, error) {
	id, err := parseExpenseID(expenseID)
	if err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, id, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense by ID",
				slog.String("expense_id", id))
		}
		return nil, err
	}

	return expense, nil
}

// ListExpenses returns the owner's ledger newest first. Filters intersect,
// and an invalid type value has already been dropped by the params mapping.
func (s *expenseServiceImpl) ListExpenses(ctx context.Context, userID string, params dto.ListExpensesParams) ([]domain.ExpenseEntry, *string, error) {
	expenses, nextToken, err := s.expenseRepo.ListExpenses(ctx, userID, params.ToExpenseFilter(), params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, nil, err
	}
	if expenses == nil {
		expenses = []domain.ExpenseEntry{}
	}

	s.LogDebug(ctx, "Expenses listed successfully", slog.Int("count", len(expenses)))
	return expenses, nextToken, nil
}

// UpdateExpense applies a sparse update: absent fields stay untouched, and a
// single invalid field rejects the whole update before anything is written.
func (s *expenseServiceImpl) UpdateExpense(ctx context.Context, userID string, expenseID string, req dto.UpdateExpenseRequest) (*domain.ExpenseEntry, error) {
	expense, err := s.GetExpenseByID(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}

	var fields []string
	updated := false

	if req.Title != nil {
		title, msg := validateTitle(*req.Title)
		if msg != "" {
			fields = append(fields, msg)
		} else {
			expense.Title = title
		}
		updated = true
	}
	if req.Amount != nil {
		if msg := validateAmount(req.Amount); msg != "" {
			fields = append(fields, msg)
		} else {
			expense.Amount = *req.Amount
		}
		updated = true
	}
	if req.Type != nil {
		if msg := validateType(*req.Type); msg != "" {
			fields = append(fields, msg)
		} else {
			expense.Type = domain.ExpenseType(*req.Type)
		}
		updated = true
	}
	if req.Category != nil {
		category, msg := validateCategory(*req.Category)
		if msg != "" {
			fields = append(fields, msg)
		} else {
			expense.Category = category
		}
		updated = true
	}
	if req.Date != nil {
		expense.Date = *req.Date
		updated = true
	}

	if len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields...)
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for expense update",
			slog.String("expense_id", expense.ExpenseID))
		return expense, nil
	}

	expense.LastUpdatedAt = time.Now()

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense",
			slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense updated successfully",
		slog.String("expense_id", expense.ExpenseID))
	return expense, nil
}

// DeleteExpense hard-deletes an owned expense and returns the snapshot taken
// just before removal so the caller can confirm what was lost.
func (s *expenseServiceImpl) DeleteExpense(ctx context.Context, userID string, expenseID string) (*domain.ExpenseEntry, error) {
	expense, err := s.GetExpenseByID(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expense.ExpenseID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete expense",
				slog.String("expense_id", expense.ExpenseID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Expense deleted successfully",
		slog.String("expense_id", expense.ExpenseID))
	return expense, nil
}

// GetExpenseStats recomputes the summary from the current ledger in two
// bounded aggregate round trips. Nothing is cached or maintained between
// calls, so a read immediately after a mutation reflects it.
func (s *expenseServiceImpl) GetExpenseStats(ctx context.Context, userID string) (*domain.ExpenseStats, error) {
	stats, err := s.expenseRepo.SumExpenseTotals(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute expense totals")
		return nil, err
	}

	breakdown, err := s.expenseRepo.SumByCategory(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute category breakdown")
		return nil, err
	}
	if breakdown == nil {
		breakdown = []domain.CategoryTotal{}
	}
	stats.CategoryBreakdown = breakdown

	return stats, nil
}
