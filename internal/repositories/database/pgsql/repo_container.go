package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/trackmyspend/expense_tracker_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository to the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExpenseRepo: NewExpenseRepository(dbPool),
		UserRepo:    NewUserRepository(dbPool),
	}
}
