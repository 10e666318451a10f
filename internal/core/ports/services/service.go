package services

// ServiceContainer holds instances of all the application services.
// Handlers receive this during route registration instead of concrete types.
type ServiceContainer struct {
	Expense     ExpenseSvcFacade
	User        UserSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
}
