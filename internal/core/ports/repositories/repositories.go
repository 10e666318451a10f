package repositories

// RepositoryProvider bundles all repositories needed to construct the
// service layer.
type RepositoryProvider struct {
	ExpenseRepo ExpenseRepositoryFacade
	UserRepo    UserRepositoryFacade
}
