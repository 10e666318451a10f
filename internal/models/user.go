package models

// User maps one row of the users table.
type User struct {
	UserID         string
	Username       string
	Email          string
	PasswordHash   string
	AuthProvider   string
	ProviderUserID string
	AuditFields
}
