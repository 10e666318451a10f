package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/trackmyspend/expense_tracker_app/internal/apperrors"
	"github.com/trackmyspend/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/trackmyspend/expense_tracker_app/internal/core/ports/repositories"
	"github.com/trackmyspend/expense_tracker_app/internal/models"
	"github.com/trackmyspend/expense_tracker_app/internal/utils/pagination"
)

// PgxExpenseRepository persists expenses in PostgreSQL.
type PgxExpenseRepository struct {
	BaseRepository
}

// NewExpenseRepository creates a new repository for expense data.
func NewExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func toModelExpense(d domain.ExpenseEntry) models.Expense {
	return models.Expense{
		ExpenseID: d.ExpenseID,
		UserID:    d.UserID,
		Title:     d.Title,
		Amount:    d.Amount,
		Type:      models.ExpenseType(d.Type),
		Category:  d.Category,
		Date:      d.Date,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainExpense(m models.Expense) domain.ExpenseEntry {
	return domain.ExpenseEntry{
		ExpenseID: m.ExpenseID,
		UserID:    m.UserID,
		Title:     m.Title,
		Amount:    m.Amount,
		Type:      domain.ExpenseType(m.Type),
		Category:  m.Category,
		Date:      m.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const expenseColumns = `expense_id, user_id, title, amount, expense_type, category, date, created_at, last_updated_at`

func scanExpense(row pgx.Row) (*models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.UserID,
		&m.Title,
		&m.Amount,
		&m.Type,
		&m.Category,
		&m.Date,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveExpense inserts a new expense row.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.ExpenseEntry) error {
	m := toModelExpense(expense)

	query := `
		INSERT INTO expenses (expense_id, user_id, title, amount, expense_type, category, date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.UserID,
		m.Title,
		m.Amount,
		m.Type,
		m.Category,
		m.Date,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: expense with ID %s already exists", apperrors.ErrDuplicate, m.ExpenseID)
		}
		return apperrors.NewAppError(500, "failed to save expense "+m.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves one expense scoped to its owner. A row owned by
// anyone else is indistinguishable from a missing one.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string, userID string) (*domain.ExpenseEntry, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1 AND user_id = $2;`

	m, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find expense "+expenseID, err)
	}

	d := toDomainExpense(*m)
	return &d, nil
}

// ListExpenses retrieves the owner's expenses matching the filter, sorted by
// date descending with created_at ascending as the tie-breaker so that entries
// recorded on the same date keep their insertion order. A limit <= 0 returns
// the whole ledger; otherwise keyset pagination applies.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, userID string, filter domain.ExpenseFilter, limit int, nextToken *string) ([]domain.ExpenseEntry, *string, error) {
	baseQuery := `SELECT ` + expenseColumns + ` FROM expenses`

	filterClause := `WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.Type.IsValid() {
		args = append(args, string(filter.Type))
		filterClause += ` AND expense_type = $` + strconv.Itoa(len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		filterClause += ` AND category = $` + strconv.Itoa(len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		filterClause += ` AND date >= $` + strconv.Itoa(len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		filterClause += ` AND date <= $` + strconv.Itoa(len(args))
	}

	// Sort order must stay stable; the cursor below depends on it.
	orderByClause := `ORDER BY date DESC, created_at ASC`

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		// Mixed sort directions rule out a tuple comparison here.
		dateIdx := strconv.Itoa(len(args) + 1)
		createdIdx := strconv.Itoa(len(args) + 2)
		filterClause += ` AND (date < $` + dateIdx + ` OR (date = $` + dateIdx + ` AND created_at > $` + createdIdx + `))`
		args = append(args, lastDate, lastCreatedAt)
	}

	fetchAll := limit <= 0
	query := baseQuery + " " + filterClause + " " + orderByClause
	if !fetchAll {
		// Fetch one extra row to know whether a next page exists.
		args = append(args, limit+1)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	query += ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query expenses for user "+userID, err)
	}
	defer rows.Close()

	var modelExpenses []models.Expense
	for rows.Next() {
		m, scanErr := scanExpense(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan expense row", scanErr)
		}
		modelExpenses = append(modelExpenses, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating expense rows", err)
	}

	var newNextToken *string
	if !fetchAll && len(modelExpenses) > limit {
		modelExpenses = modelExpenses[:limit]
		last := modelExpenses[limit-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		newNextToken = &token
	}

	expenses := make([]domain.ExpenseEntry, len(modelExpenses))
	for i, m := range modelExpenses {
		expenses[i] = toDomainExpense(m)
	}
	return expenses, newNextToken, nil
}

// UpdateExpense persists a merged record. The owner scoping in the WHERE
// clause makes cross-user updates report ErrNotFound.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.ExpenseEntry) error {
	m := toModelExpense(expense)

	query := `
		UPDATE expenses
		SET title = $3, amount = $4, expense_type = $5, category = $6, date = $7, last_updated_at = $8
		WHERE expense_id = $1 AND user_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.UserID,
		m.Title,
		m.Amount,
		m.Type,
		m.Category,
		m.Date,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update expense "+m.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpense removes the owner's expense. Hard delete, no tombstone.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string, userID string) error {
	query := `DELETE FROM expenses WHERE expense_id = $1 AND user_id = $2;`

	tag, err := r.Pool.Exec(ctx, query, expenseID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete expense "+expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SumExpenseTotals computes income/expense totals and the row count for one
// user in a single aggregate pass. An empty ledger yields zeroes, not an error.
func (r *PgxExpenseRepository) SumExpenseTotals(ctx context.Context, userID string) (*domain.ExpenseStats, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN expense_type = 'Income' THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN expense_type = 'Expense' THEN amount ELSE 0 END), 0) AS total_expense,
			COUNT(*) AS count
		FROM expenses
		WHERE user_id = $1;
	`

	var totalIncome, totalExpense decimal.Decimal
	var count int64
	err := r.Pool.QueryRow(ctx, query, userID).Scan(&totalIncome, &totalExpense, &count)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate expense totals for user "+userID, err)
	}

	return &domain.ExpenseStats{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
		Count:        count,
	}, nil
}

// SumByCategory groups the user's entries by exact category string. The
// secondary sort on category name keeps the output deterministic when two
// categories tie on total.
func (r *PgxExpenseRepository) SumByCategory(ctx context.Context, userID string) ([]domain.CategoryTotal, error) {
	query := `
		SELECT category, SUM(amount) AS total, COUNT(*) AS count
		FROM expenses
		WHERE user_id = $1
		GROUP BY category
		ORDER BY total DESC, category ASC;
	`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate categories for user "+userID, err)
	}
	defer rows.Close()

	breakdown := []domain.CategoryTotal{}
	for rows.Next() {
		var ct domain.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total, &ct.Count); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category row", err)
		}
		breakdown = append(breakdown, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category rows", err)
	}

	return breakdown, nil
}
