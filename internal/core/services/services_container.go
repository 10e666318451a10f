package services

import (
	portsrepo "github.com/trackmyspend/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/trackmyspend/expense_tracker_app/internal/core/ports/services"
	"github.com/trackmyspend/expense_tracker_app/internal/platform/config"
)

// NewServiceContainer creates a service container with initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Expense:     NewExpenseService(repos.ExpenseRepo),
		User:        NewUserService(repos.UserRepo),
		Token:       NewTokenService(cfg),
		GoogleOAuth: NewGoogleOAuthService(cfg),
	}
}
